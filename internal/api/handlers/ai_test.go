package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andysooho/cooking-rumi/internal/core/ai/provider"
	aiservice "github.com/andysooho/cooking-rumi/internal/core/ai/service"
	"github.com/andysooho/cooking-rumi/internal/infrastructure/config"
	"github.com/andysooho/cooking-rumi/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// stubProvider 模型替身
type stubProvider struct {
	textResponse string
	imageResult  *provider.ImageResult
	imageErr     error
}

func (p *stubProvider) GenerateText(ctx context.Context, req *provider.TextRequest) (string, error) {
	return p.textResponse, nil
}

func (p *stubProvider) GenerateImage(ctx context.Context, model, prompt string) (*provider.ImageResult, error) {
	if p.imageErr != nil {
		return nil, p.imageErr
	}
	return p.imageResult, nil
}

func (p *stubProvider) Close() error { return nil }

func newTestRouter(p provider.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			TextModel:  "gemini-2.5-flash",
			ImageModel: "gemini-3-pro-image-preview",
		},
	}
	h := NewAIHandler(aiservice.NewServiceWithProvider(cfg, p, nil, nil), cfg)

	router := gin.New()
	router.POST("/ai/chat", h.HandleChat)
	router.POST("/ai/image", h.HandleImage)
	return router
}

func TestHandleChat(t *testing.T) {
	router := newTestRouter(&stubProvider{textResponse: "안녕, 나는 루미야!"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/chat",
		strings.NewReader(`{"prompt":"자기소개 해줘"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := common.ParseJSON(w.Body.String(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if common.SafeText(body["content"]) != "안녕, 나는 루미야!" {
		t.Errorf("content = %v", body["content"])
	}
}

func TestHandleChatMissingPrompt(t *testing.T) {
	router := newTestRouter(&stubProvider{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleImage(t *testing.T) {
	router := newTestRouter(&stubProvider{
		imageResult: &provider.ImageResult{MimeType: "image/png", Data: "cGl4ZWxz"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/image",
		strings.NewReader(`{"prompt":"a pixel art onion"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := common.ParseJSON(w.Body.String(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if common.SafeText(body["imageDataUrl"]) != "data:image/png;base64,cGl4ZWxz" {
		t.Errorf("imageDataUrl = %v", body["imageDataUrl"])
	}
}

func TestHandleImageProviderFailure(t *testing.T) {
	router := newTestRouter(&stubProvider{imageErr: errors.New("image model down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/ai/image",
		strings.NewReader(`{"prompt":"a pixel art onion"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 (passthrough has no fallback)", w.Code)
	}
}
