package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strings"
)

// ParseJSON 解析 JSON 字符串到結構體
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v, false)
}

// ParseJSONStrict 解析 JSON 字符串到結構體（禁止未知欄位）
func ParseJSONStrict(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v, true)
}

// ParseJSONBytes 解析 JSON 位元組切片到結構體
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v, false)
}

func decodeJSON(r io.Reader, v interface{}, disallowUnknown bool) error {
	dec := json.NewDecoder(r)
	if disallowUnknown {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

// ToJSON 將結構體轉換為 JSON 字符串
func ToJSON(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

var (
	openFencePattern  = regexp.MustCompile("(?i)^```json\\s*")
	bareFencePattern  = regexp.MustCompile("(?i)^```\\s*")
	closeFencePattern = regexp.MustCompile("(?i)\\s*```$")
	objectPattern     = regexp.MustCompile(`(?s)\{.*\}`)
	arrayPattern      = regexp.MustCompile(`(?s)\[.*\]`)
)

// cleanModelText 去除模型回應外層的 markdown 程式碼框
func cleanModelText(input string) string {
	cleaned := strings.TrimSpace(input)
	cleaned = openFencePattern.ReplaceAllString(cleaned, "")
	cleaned = bareFencePattern.ReplaceAllString(cleaned, "")
	cleaned = closeFencePattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// findJSONLikeChunks 掃描文字中最外層的大括號與中括號片段，依長度由長到短排序
func findJSONLikeChunks(input string) []string {
	chunks := objectPattern.FindAllString(input, -1)
	chunks = append(chunks, arrayPattern.FindAllString(input, -1)...)
	sort.SliceStable(chunks, func(i, j int) bool {
		return len(chunks[i]) > len(chunks[j])
	})
	return chunks
}

// ExtractModelJSON 從模型的自由文字回應中取出 JSON 並解析到 v。
// 先去除程式碼框直接解析；失敗時改嘗試各個 JSON 形狀的子字串（最長優先）。
// 全部失敗時回傳 ErrMalformedModelOutput，呼叫端應改用後備內容。
func ExtractModelJSON(text string, v interface{}) error {
	cleaned := cleanModelText(text)
	if err := ParseJSON(cleaned, v); err == nil {
		return nil
	}

	for _, candidate := range findJSONLikeChunks(cleaned) {
		if err := ParseJSON(candidate, v); err == nil {
			return nil
		}
	}
	return ErrMalformedModelOutput
}

// SafeText 將不可信的值轉成安全的字串：非字串回傳空字串，字串去除前後空白
func SafeText(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// SafeNumber 將不可信的值轉成有限數值，非數值或非有限值回傳 false
func SafeNumber(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// Clamp 把數值限制在 [min, max] 區間
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
