package image

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Processor 上傳圖片的驗證與拆解
type Processor struct {
	maxSizeBytes int64
}

// NewProcessor 創建圖片處理器
func NewProcessor(maxSizeBytes int64) *Processor {
	return &Processor{
		maxSizeBytes: maxSizeBytes,
	}
}

// ParseDataURL 拆解 data URL，回傳 MIME 類型與 base64 資料。
// base64 部分只驗證長度與可解碼性，不做重新編碼。
func (p *Processor) ParseDataURL(dataURL string) (mimeType, data string, err error) {
	if dataURL == "" {
		return "", "", fmt.Errorf("image data is empty")
	}

	if !strings.HasPrefix(dataURL, "data:") {
		return "", "", fmt.Errorf("invalid dataUrl format")
	}

	rest := strings.TrimPrefix(dataURL, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", "", fmt.Errorf("invalid dataUrl format")
	}

	mimeType = rest[:sep]
	data = rest[sep+len(";base64,"):]
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	if data == "" {
		return "", "", fmt.Errorf("invalid dataUrl format")
	}

	// base64 每 4 字元代表 3 位元組
	if p.maxSizeBytes > 0 && int64(len(data))/4*3 > p.maxSizeBytes {
		return "", "", fmt.Errorf("image size exceeds maximum limit of %d bytes", p.maxSizeBytes)
	}

	if _, err := base64.StdEncoding.DecodeString(data); err != nil {
		return "", "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	return mimeType, data, nil
}
