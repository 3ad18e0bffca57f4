package game

import (
	"testing"

	"github.com/andysooho/cooking-rumi/internal/pkg/common"
)

func TestNormalizeConfidence(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		fallback float64
		want     float64
	}{
		{"超過上限", 1.4, 0.75, 1.0},
		{"低於下限", -0.2, 0.75, 0.0},
		{"正常值", 0.9, 0.75, 0.9},
		{"非數值用預設", "high", 0.75, 0.75},
		{"nil 用預設", nil, 0.4, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeConfidence(tt.input, tt.fallback); got != tt.want {
				t.Errorf("normalizeConfidence(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIngredients(t *testing.T) {
	payload := map[string]any{
		"ingredients": []any{
			map[string]any{"name": "  양파  ", "nameEn": "onion", "category": "채소"},
			map[string]any{"name": "", "nameEn": "ghost"},
			map[string]any{"nameEn": "noname"},
			map[string]any{"name": "두부"},
			"not an object",
		},
	}

	got := normalizeIngredients(payload, nil)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "양파" || got[0].NameEn != "onion" {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Name != "두부" {
		t.Errorf("second name = %q, want 두부", got[1].Name)
	}
	if got[1].NameEn == "" || got[1].Category != "기타" {
		t.Errorf("missing fields should get defaults, got %+v", got[1])
	}
}

func TestNormalizeIngredientsAllInvalid(t *testing.T) {
	payload := map[string]any{
		"ingredients": []any{
			map[string]any{"name": 42},
			map[string]any{"name": "   "},
		},
	}

	got := normalizeIngredients(payload, []string{"fish_market.jpg"})
	if len(got) != 1 || got[0].Name != "생선" {
		t.Fatalf("expected filename fallback to 생선, got %+v", got)
	}
}

func stepPayload(action, tool string, ingredients ...any) map[string]any {
	return map[string]any{
		"action":      action,
		"tool":        tool,
		"ingredients": ingredients,
	}
}

func TestNormalizeRecipeRejectsSparseSteps(t *testing.T) {
	ingredients := []common.Ingredient{{Name: "양파"}}
	fb := FallbackRecipe(common.ModeDelicious, ingredients)

	payload := map[string]any{
		"dishName": "모델이 지은 요리",
		"recipe": map[string]any{
			"steps": []any{
				stepPayload("양파를 다진다", "도마", "양파"),
				stepPayload("볶는다", "프라이팬", "다진 양파"),
				stepPayload("끓인다", "냄비", "볶은 양파"),
			},
		},
	}

	plan := normalizeRecipe(payload, common.ModeDelicious, ingredients)
	if plan.DishName != "모델이 지은 요리" {
		t.Errorf("DishName = %q, valid field should survive", plan.DishName)
	}
	if len(plan.Recipe.Steps) != len(fb.Recipe.Steps) {
		t.Errorf("steps = %d, want fallback steps %d", len(plan.Recipe.Steps), len(fb.Recipe.Steps))
	}
	if plan.Recipe.Steps[0].Action != fb.Recipe.Steps[0].Action {
		t.Errorf("first step = %q, want fallback %q", plan.Recipe.Steps[0].Action, fb.Recipe.Steps[0].Action)
	}
}

func TestNormalizeRecipeKeepsFiveSteps(t *testing.T) {
	payload := map[string]any{
		"dishName": "양파 수프",
		"recipe": map[string]any{
			"steps": []any{
				stepPayload("양파를 다진다", "도마", "양파"),
				stepPayload("버터에 볶는다", "프라이팬", "다진 양파"),
				stepPayload("육수를 붓는다", "냄비", "볶은 양파"),
				stepPayload("푹 끓인다", "냄비", "수프"),
				stepPayload("그릇에 담는다", "믹싱볼", "수프"),
			},
			"tips":      "약불로 오래 끓이기",
			"totalTime": "40분",
		},
	}

	plan := normalizeRecipe(payload, common.ModeDelicious, []common.Ingredient{{Name: "양파"}})
	if len(plan.Recipe.Steps) != 5 {
		t.Fatalf("steps = %d, want 5", len(plan.Recipe.Steps))
	}
	if plan.Recipe.Steps[2].Order != 3 {
		t.Errorf("missing order should default to position, got %d", plan.Recipe.Steps[2].Order)
	}
	if plan.Recipe.Tips != "약불로 오래 끓이기" || plan.Recipe.TotalTime != "40분" {
		t.Errorf("detail fields should survive: %+v", plan.Recipe)
	}
}

func TestNormalizeRecipeDropsInvalidSteps(t *testing.T) {
	payload := map[string]any{
		"recipe": map[string]any{
			"steps": []any{
				stepPayload("", "도마", "양파"),
				stepPayload("자른다", "", "양파"),
				map[string]any{"action": "섞는다", "tool": "믹싱볼", "ingredients": []any{}},
				stepPayload("다진다", "도마", "양파"),
			},
		},
	}

	steps := normalizeSteps(asMap(payload["recipe"])["steps"])
	if len(steps) != 1 || steps[0].Action != "다진다" {
		t.Fatalf("expected single valid step, got %+v", steps)
	}
}

func TestNormalizeCookingAction(t *testing.T) {
	valid := map[string]any{
		"result":   " 다진 양파 ",
		"resultEn": "chopped onion",
		"reaction": "좋은 선택!",
		"emoji":    "🔪",
	}
	action, err := normalizeCookingAction(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Result != "다진 양파" {
		t.Errorf("Result = %q, want trimmed 다진 양파", action.Result)
	}

	missing := []map[string]any{
		{"reaction": "좋아"},
		{"result": "다진 양파"},
		{"result": 42, "reaction": "좋아"},
	}
	for _, payload := range missing {
		if _, err := normalizeCookingAction(payload); err == nil {
			t.Errorf("normalizeCookingAction(%v) should fail", payload)
		}
	}
}

func TestNormalizeEvaluation(t *testing.T) {
	fb := common.CookingEvaluation{
		MatchRate:           42,
		Evaluation:          "대체 평가",
		MissedSteps:         []string{"기본 단계"},
		BonusPoints:         []string{"기본 보너스"},
		FullRecipeNarrative: "기본 서사",
	}

	payload := map[string]any{
		"matchRate":   150.0,
		"evaluation":  "잘했어!",
		"missedSteps": []any{"소금", "", "후추", "설탕", "간장", "식초"},
		"bonusPoints": "not a list",
	}

	got := normalizeEvaluation(payload, fb)
	if got.MatchRate != 100 {
		t.Errorf("MatchRate = %d, want clamped 100", got.MatchRate)
	}
	if got.Evaluation != "잘했어!" {
		t.Errorf("Evaluation = %q", got.Evaluation)
	}
	if len(got.MissedSteps) != 4 {
		t.Errorf("MissedSteps = %d entries, want capped at 4", len(got.MissedSteps))
	}
	if len(got.BonusPoints) != 1 || got.BonusPoints[0] != "기본 보너스" {
		t.Errorf("BonusPoints should fall back, got %v", got.BonusPoints)
	}
	if got.FullRecipeNarrative != "기본 서사" {
		t.Errorf("FullRecipeNarrative should fall back, got %q", got.FullRecipeNarrative)
	}
}

func TestNormalizeEvaluationNonNumericRate(t *testing.T) {
	fb := common.CookingEvaluation{MatchRate: 42}
	got := normalizeEvaluation(map[string]any{"matchRate": "높음"}, fb)
	if got.MatchRate != 42 {
		t.Errorf("MatchRate = %d, want fallback 42", got.MatchRate)
	}
}

func TestSanitizeIngredientInputs(t *testing.T) {
	raw := []any{
		map[string]any{"name": "양파", "source": "cooked"},
		map[string]any{"name": "", "id": "x"},
		map[string]any{"id": "only-id"},
		map[string]any{"name": "토마토"},
		"garbage",
	}

	got := SanitizeIngredientInputs(raw)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Source != common.SourceCooked {
		t.Errorf("explicit cooked source should survive, got %q", got[0].Source)
	}
	if got[1].Source != common.SourceFridge {
		t.Errorf("default source = %q, want fridge", got[1].Source)
	}
	if got[1].ID == "" {
		t.Error("missing id should get a default")
	}
}

func TestNormalizeLogs(t *testing.T) {
	raw := []any{
		map[string]any{
			"action": "양파를 다진다", "ingredient": "양파", "tool": "도마", "result": "다진 양파",
		},
		map[string]any{
			"action": "볶는다", "ingredient": "양파", "tool": "프라이팬",
		},
		"garbage",
	}

	got := NormalizeLogs(raw)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (incomplete entries dropped)", len(got))
	}
	log := got[0]
	if log.ID == "" || log.CreatedAt == "" {
		t.Errorf("missing id/createdAt should get defaults: %+v", log)
	}
	if log.Reaction != "좋은 시도야!" {
		t.Errorf("default reaction = %q", log.Reaction)
	}
}
