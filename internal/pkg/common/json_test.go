package common

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestSafeText(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"去除前後空白", "  다진 양파  ", "다진 양파"},
		{"純空白", "   ", ""},
		{"非字串", 123, ""},
		{"nil", nil, ""},
		{"物件", map[string]any{"a": 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeText(tt.input); got != tt.want {
				t.Errorf("SafeText(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSafeNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{"float64", 3.5, 3.5, true},
		{"json.Number", json.Number("2.5"), 2.5, true},
		{"int", 4, 4, true},
		{"NaN", math.NaN(), 0, false},
		{"Inf", math.Inf(1), 0, false},
		{"字串", "high", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeNumber(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SafeNumber(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{1.4, 0, 1, 1},
		{-0.2, 0, 1, 0},
		{0.75, 0, 1, 0.75},
		{150, 10, 99, 99},
		{3, 10, 99, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestExtractModelJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"純 JSON", `{"result":"다진 양파","reaction":"좋아!"}`},
		{"json 程式碼框", "```json\n{\"result\":\"다진 양파\",\"reaction\":\"좋아!\"}\n```"},
		{"無語言標記的程式碼框", "```\n{\"result\":\"다진 양파\",\"reaction\":\"좋아!\"}\n```"},
		{"前後夾雜說明文字", "물론이지! 결과는 다음과 같아.\n{\"result\":\"다진 양파\",\"reaction\":\"좋아!\"}\n도움이 됐길!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload map[string]any
			if err := ExtractModelJSON(tt.input, &payload); err != nil {
				t.Fatalf("ExtractModelJSON() error = %v", err)
			}
			if SafeText(payload["result"]) != "다진 양파" {
				t.Errorf("result = %v, want 다진 양파", payload["result"])
			}
		})
	}
}

func TestExtractModelJSONArray(t *testing.T) {
	var items []any
	input := "추천 목록이야: [\"힌트1\", \"힌트2\"] 끝!"
	if err := ExtractModelJSON(input, &items); err != nil {
		t.Fatalf("ExtractModelJSON() error = %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
}

func TestExtractModelJSONMalformed(t *testing.T) {
	inputs := []string{
		"",
		"그건 잘 모르겠어, 미안!",
		"{broken json",
		"```json\n{invalid}\n```",
	}

	for _, input := range inputs {
		var payload map[string]any
		err := ExtractModelJSON(input, &payload)
		if !errors.Is(err, ErrMalformedModelOutput) {
			t.Errorf("ExtractModelJSON(%q) error = %v, want ErrMalformedModelOutput", input, err)
		}
	}
}

func TestParseGameMode(t *testing.T) {
	tests := []struct {
		input any
		want  GameMode
	}{
		{"creative", ModeCreative},
		{"delicious", ModeDelicious},
		{"unknown", ModeDelicious},
		{nil, ModeDelicious},
		{42, ModeDelicious},
	}

	for _, tt := range tests {
		if got := ParseGameMode(tt.input); got != tt.want {
			t.Errorf("ParseGameMode(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
