package common

import (
	"errors"
	"net/http"
)

// ErrMalformedModelOutput 模型回應中找不到任何可解析的 JSON。
// 此錯誤只在服務內部流轉：呼叫端必須改用確定性的後備內容，不得回傳給使用者。
var ErrMalformedModelOutput = errors.New("model response did not contain valid JSON")

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 表示呼叫端輸入驗證錯誤，是唯一會以 400 回傳給使用者的錯誤類型
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 預定義錯誤代碼
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"    // 400
	ErrCodeRequestTimeout  = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"  // 429
	ErrCodeInternalError   = "INTERNAL_ERROR"     // 500
	ErrCodeAIService       = "AI_SERVICE_ERROR"   // 503
	ErrCodeCacheDisabled   = "CACHE_DISABLED"     // 503
	ErrCodeCacheFull       = "CACHE_FULL"         // 503
)

// 預定義錯誤
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, nil)
	ErrRequestTimeout  = NewError(ErrCodeRequestTimeout, "請求超時", http.StatusRequestTimeout, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "請求過於頻繁", http.StatusTooManyRequests, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "服務器內部錯誤", http.StatusInternalServerError, nil)
	ErrAIServiceError  = NewError(ErrCodeAIService, "AI 服務錯誤", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled   = NewError(ErrCodeCacheDisabled, "緩存已禁用", http.StatusServiceUnavailable, nil)
	ErrCacheFull       = NewError(ErrCodeCacheFull, "緩存已滿", http.StatusServiceUnavailable, nil)
)
