package game

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/andysooho/cooking-rumi/internal/pkg/common"
)

func TestFallbackCookingActionKnownPair(t *testing.T) {
	got := FallbackCookingAction("양파", "도마")
	if got.Result != "다진 양파" {
		t.Errorf("Result = %q, want 다진 양파", got.Result)
	}
	if got.ResultEn != "chopped onion" {
		t.Errorf("ResultEn = %q, want chopped onion", got.ResultEn)
	}
	if got.Emoji != "🔪" {
		t.Errorf("Emoji = %q, want 🔪", got.Emoji)
	}
}

func TestFallbackCookingActionSynthesized(t *testing.T) {
	tests := []struct {
		ingredient string
		tool       string
		wantResult string
		wantEmoji  string
	}{
		{"당근", "오븐", "당근 구운 재료", "🔥"},
		{"감자", "프라이팬", "감자 볶은 재료", "🍳"},
		{"두부", "믹싱볼", "두부 버무린 재료", "🥣"},
		{"호박", "전자레인지", "호박 조리된 재료", "🍽️"},
	}

	for _, tt := range tests {
		got := FallbackCookingAction(tt.ingredient, tt.tool)
		if got.Result != tt.wantResult {
			t.Errorf("FallbackCookingAction(%q, %q).Result = %q, want %q",
				tt.ingredient, tt.tool, got.Result, tt.wantResult)
		}
		if got.Emoji != tt.wantEmoji {
			t.Errorf("FallbackCookingAction(%q, %q).Emoji = %q, want %q",
				tt.ingredient, tt.tool, got.Emoji, tt.wantEmoji)
		}
		if got.Reaction == "" {
			t.Error("Reaction should not be empty")
		}
	}
}

func TestFallbackIngredientsFromFileNames(t *testing.T) {
	got := FallbackIngredientsFromFileNames([]string{"IMG_onion_01.jpg", "my-egg-photo.png"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "양파" || got[1].Name != "달걀" {
		t.Errorf("names = %q, %q, want 양파, 달걀", got[0].Name, got[1].Name)
	}
	for _, ing := range got {
		if ing.Source != common.SourceFridge {
			t.Errorf("Source = %q, want fridge", ing.Source)
		}
	}
}

func TestFallbackIngredientsNoKeywordMatch(t *testing.T) {
	got := FallbackIngredientsFromFileNames([]string{"photo1.jpg", "photo2.jpg"})
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6 default ingredients", len(got))
	}
	if got[0].Name != "양파" {
		t.Errorf("first default = %q, want 양파", got[0].Name)
	}
}

func TestFallbackRecipeDishName(t *testing.T) {
	pastaSet := []common.Ingredient{
		{Name: "파스타면"}, {Name: "토마토"}, {Name: "생선"},
	}
	eggSet := []common.Ingredient{
		{Name: "달걀"}, {Name: "토마토"},
	}

	tests := []struct {
		name        string
		mode        common.GameMode
		ingredients []common.Ingredient
		wantDish    string
	}{
		{"正統模式海鮮義大利麵", common.ModeDelicious, pastaSet, "생선을 곁들인 토마토 파스타"},
		{"創意模式海鮮義大利麵", common.ModeCreative, pastaSet, "바다향 토마토 퓨전 파스타"},
		{"正統模式番茄蛋", common.ModeDelicious, eggSet, "토마토 에그 스크램블"},
		{"其他組合", common.ModeDelicious, []common.Ingredient{{Name: "감자"}}, "냉장고 스페셜 볶음"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := FallbackRecipe(tt.mode, tt.ingredients)
			if plan.DishName != tt.wantDish {
				t.Errorf("DishName = %q, want %q", plan.DishName, tt.wantDish)
			}
			if len(plan.Recipe.Steps) < 4 {
				t.Errorf("steps = %d, want at least 4", len(plan.Recipe.Steps))
			}
			if len(plan.Hints) != 3 {
				t.Errorf("hints = %d, want 3", len(plan.Hints))
			}
			if plan.Recipe.TotalTime != "20~30분" {
				t.Errorf("TotalTime = %q, want 20~30분", plan.Recipe.TotalTime)
			}
		})
	}
}

func TestEstimateMatchRateEmptyLogs(t *testing.T) {
	recipe := FallbackRecipe(common.ModeDelicious, nil)
	if got := EstimateMatchRate(recipe, nil); got != 0 {
		t.Errorf("EstimateMatchRate(empty logs) = %d, want 0", got)
	}
}

func TestEstimateMatchRateBand(t *testing.T) {
	recipe := FallbackRecipe(common.ModeDelicious, nil)

	tests := []struct {
		name string
		logs []common.CookingLog
	}{
		{"完全不相干的操作", []common.CookingLog{
			{Action: "아무것도 안 함", Tool: "없음"},
		}},
		{"完全照著食譜做", func() []common.CookingLog {
			var logs []common.CookingLog
			for _, step := range recipe.Recipe.Steps {
				logs = append(logs, common.CookingLog{Action: step.Action, Tool: step.Tool})
			}
			return logs
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateMatchRate(recipe, tt.logs)
			if got < 10 || got > 99 {
				t.Errorf("EstimateMatchRate() = %d, want within [10, 99]", got)
			}
		})
	}
}

func TestEstimateMatchRateIgnoresSpacingAndCase(t *testing.T) {
	recipe := common.RecipePlan{
		Recipe: common.RecipeDetail{
			Steps: []common.RecipeStep{
				{Order: 1, Action: "양파를 다진다", Tool: "도마", Ingredients: []string{"양파"}},
			},
		},
	}
	logs := []common.CookingLog{
		{Action: "양 파를다진다 그리고 정리", Tool: "도마"},
	}

	full := EstimateMatchRate(recipe, logs)
	none := EstimateMatchRate(recipe, []common.CookingLog{{Action: "설거지", Tool: "싱크대"}})
	if full <= none {
		t.Errorf("matched rate %d should exceed unmatched rate %d", full, none)
	}
}

func TestFallbackEvaluation(t *testing.T) {
	recipe := FallbackRecipe(common.ModeDelicious, nil)
	logs := []common.CookingLog{
		{Action: "양파를 다진다", Tool: "도마", Result: "다진 양파"},
	}

	got := FallbackEvaluation(common.ModeDelicious, recipe, logs, "다진 양파")
	if got.MatchRate < 10 || got.MatchRate > 99 {
		t.Errorf("MatchRate = %d, want within [10, 99]", got.MatchRate)
	}
	if len(got.MissedSteps) == 0 || len(got.MissedSteps) > 3 {
		t.Errorf("MissedSteps = %d entries, want 1..3", len(got.MissedSteps))
	}
	if len(got.BonusPoints) == 0 {
		t.Error("BonusPoints should not be empty")
	}
	if got.FullRecipeNarrative == "" {
		t.Error("FullRecipeNarrative should not be empty")
	}
}

func TestPickFinalDishFromLogs(t *testing.T) {
	tests := []struct {
		name string
		logs []common.CookingLog
		want string
	}{
		{"空紀錄", nil, "미완성 요리"},
		{"取最後結果", []common.CookingLog{
			{Result: "다진 양파"},
			{Result: "토마토 파스타"},
		}, "토마토 파스타"},
		{"最後結果為空", []common.CookingLog{{Result: ""}}, "미완성 요리"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickFinalDishFromLogs(tt.logs); got != tt.want {
				t.Errorf("PickFinalDishFromLogs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallbackImageDataURL(t *testing.T) {
	got := FallbackImageDataURL("아주 긴 이름의 재료라서 잘려야 하는 경우", "")
	const prefix = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(got, prefix) {
		t.Fatalf("data URL prefix = %q", got[:min(len(got), 30)])
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, prefix))
	if err != nil {
		t.Fatalf("base64 decode failed: %v", err)
	}
	svg := string(decoded)
	if !strings.Contains(svg, "#ffb347") {
		t.Error("default tone should be #ffb347")
	}
	if strings.Contains(svg, "잘려야 하는 경우") {
		t.Error("label should be truncated to 14 runes")
	}
}

func TestFallbackImageDataURLEscapesMarkup(t *testing.T) {
	got := FallbackImageDataURL("A&B <재료>", "")
	decoded, err := base64.StdEncoding.DecodeString(
		strings.TrimPrefix(got, "data:image/svg+xml;base64,"))
	if err != nil {
		t.Fatalf("base64 decode failed: %v", err)
	}
	svg := string(decoded)
	if !strings.Contains(svg, "A&amp;B &lt;재료&gt;") {
		t.Errorf("label should be XML-escaped, got %q", svg)
	}
	if strings.Contains(svg, "<재료>") {
		t.Error("raw markup must not survive into the SVG text node")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
