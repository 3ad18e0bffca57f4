package image

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestParseDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("image-bytes"))

	tests := []struct {
		name     string
		input    string
		wantMime string
		wantErr  bool
	}{
		{"正常 PNG", "data:image/png;base64," + payload, "image/png", false},
		{"未標 MIME 預設 JPEG", "data:;base64," + payload, "image/jpeg", false},
		{"缺 data 前綴", "image/png;base64," + payload, "", true},
		{"缺 base64 標記", "data:image/png," + payload, "", true},
		{"空字串", "", "", true},
		{"資料不是 base64", "data:image/png;base64,!!!not-base64!!!", "", true},
	}

	p := NewProcessor(1 << 20)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, data, err := p.ParseDataURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if mime != tt.wantMime {
				t.Errorf("mime = %q, want %q", mime, tt.wantMime)
			}
			if data != payload {
				t.Errorf("data = %q, want original payload", data)
			}
		})
	}
}

func TestParseDataURLSizeLimit(t *testing.T) {
	big := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 100)))
	p := NewProcessor(10)

	if _, _, err := p.ParseDataURL("data:image/png;base64," + big); err == nil {
		t.Error("oversized image should be rejected")
	}
}
