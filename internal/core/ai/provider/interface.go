package provider

import (
	"context"
)

// InlinePart 附加在提示後的內嵌資料（如 base64 圖片）
type InlinePart struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// TextRequest 文字生成請求
type TextRequest struct {
	Model  string       `json:"model"`
	Prompt string       `json:"prompt"`
	Parts  []InlinePart `json:"parts,omitempty"`
}

// ImageResult 圖片生成結果
type ImageResult struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64 編碼的圖片資料
}

// Provider 定義生成式模型提供者介面
type Provider interface {
	// GenerateText 生成文字回應
	GenerateText(ctx context.Context, req *TextRequest) (string, error)

	// GenerateImage 生成圖片，回傳內嵌圖片資料
	GenerateImage(ctx context.Context, model, prompt string) (*ImageResult, error)

	// Close 關閉提供者連接
	Close() error
}
