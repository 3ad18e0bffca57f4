package game

import (
	"fmt"
	"math"
	"time"

	"github.com/andysooho/cooking-rumi/internal/pkg/common"
)

// 模型回應一律以 map[string]any 接收再逐欄位收斂，
// 任何欄位缺漏或型別不符都退回確定性內容，不整包作廢。

func asMap(value any) map[string]any {
	m, _ := value.(map[string]any)
	return m
}

func asSlice(value any) []any {
	s, _ := value.([]any)
	return s
}

// normalizeConfidence 收斂信心值到 [0, 1]，非數值時採用預設值
func normalizeConfidence(value any, fallback float64) float64 {
	if n, ok := common.SafeNumber(value); ok {
		return common.Clamp(n, 0, 1)
	}
	return fallback
}

// normalizeStringList 收斂字串清單，超出上限截斷，全空時採用預設清單
func normalizeStringList(value any, max int, fallback []string) []string {
	var out []string
	for _, item := range asSlice(value) {
		text := common.SafeText(item)
		if text == "" {
			continue
		}
		out = append(out, text)
		if len(out) == max {
			break
		}
	}
	if len(out) > 0 {
		return out
	}
	if len(fallback) > max {
		return fallback[:max]
	}
	return fallback
}

// SanitizeIngredientInputs 清洗呼叫端傳入的食材清單。
// 沒有名稱的條目直接剔除，缺漏欄位補上可用的預設值。
func SanitizeIngredientInputs(raw []any) []common.Ingredient {
	var out []common.Ingredient
	for index, item := range raw {
		entry := asMap(item)
		name := common.SafeText(entry["name"])
		if name == "" {
			continue
		}

		id := common.SafeText(entry["id"])
		if id == "" {
			id = fmt.Sprintf("ingredient-%d", index+1)
		}

		source := common.SourceFridge
		if common.SafeText(entry["source"]) == string(common.SourceCooked) {
			source = common.SourceCooked
		}

		out = append(out, common.Ingredient{
			ID:       id,
			Name:     name,
			NameEn:   common.SafeText(entry["nameEn"]),
			Category: common.SafeText(entry["category"]),
			Source:   source,
		})
	}
	return out
}

// NormalizeLogs 清洗呼叫端傳入的烹飪紀錄。
// 動作、食材、道具、結果缺一的條目剔除，其餘欄位補預設值。
func NormalizeLogs(raw []any) []common.CookingLog {
	var out []common.CookingLog
	for _, item := range raw {
		entry := asMap(item)

		log := common.CookingLog{
			Action:     common.SafeText(entry["action"]),
			Ingredient: common.SafeText(entry["ingredient"]),
			Tool:       common.SafeText(entry["tool"]),
			Result:     common.SafeText(entry["result"]),
		}
		if log.Action == "" || log.Ingredient == "" || log.Tool == "" || log.Result == "" {
			continue
		}

		log.ID = common.SafeText(entry["id"])
		if log.ID == "" {
			log.ID = common.GenerateUUID()
		}
		log.Reaction = common.SafeText(entry["reaction"])
		if log.Reaction == "" {
			log.Reaction = "좋은 시도야!"
		}
		log.CreatedAt = common.SafeText(entry["createdAt"])
		if log.CreatedAt == "" {
			log.CreatedAt = time.Now().Format(time.RFC3339)
		}

		out = append(out, log)
	}
	return out
}

// normalizeIngredients 收斂模型回傳的食材清單。
// 一個有效名稱都沒有時，改用檔名推測，來源標記仍維持呼叫端認定。
func normalizeIngredients(payload map[string]any, fileNames []string) []common.Ingredient {
	var out []common.Ingredient
	for index, item := range asSlice(payload["ingredients"]) {
		entry := asMap(item)
		name := common.SafeText(entry["name"])
		if name == "" {
			continue
		}

		nameEn := common.SafeText(entry["nameEn"])
		if nameEn == "" {
			nameEn = fmt.Sprintf("ingredient_%d", index+1)
		}
		category := common.SafeText(entry["category"])
		if category == "" {
			category = "기타"
		}

		out = append(out, common.Ingredient{
			ID:       fmt.Sprintf("%s-%d", nameEn, index),
			Name:     name,
			NameEn:   nameEn,
			Category: category,
			Source:   common.SourceFridge,
		})
	}

	if len(out) == 0 {
		return FallbackIngredientsFromFileNames(fileNames)
	}
	return out
}

// normalizeSteps 收斂模型回傳的步驟清單。
// 動作、道具或食材缺漏的步驟剔除，order 非數值時以序位補上。
func normalizeSteps(value any) []common.RecipeStep {
	var out []common.RecipeStep
	for index, item := range asSlice(value) {
		entry := asMap(item)

		step := common.RecipeStep{
			Action: common.SafeText(entry["action"]),
			Tool:   common.SafeText(entry["tool"]),
			Result: common.SafeText(entry["result"]),
		}
		for _, ing := range asSlice(entry["ingredients"]) {
			if text := common.SafeText(ing); text != "" {
				step.Ingredients = append(step.Ingredients, text)
			}
		}
		if step.Action == "" || step.Tool == "" || len(step.Ingredients) == 0 {
			continue
		}

		if order, ok := common.SafeNumber(entry["order"]); ok {
			step.Order = int(math.Round(order))
		} else {
			step.Order = index + 1
		}

		out = append(out, step)
	}
	return out
}

// normalizeRecipe 收斂模型回傳的食譜。
// 有效步驟不足 4 步時整份步驟採用確定性食譜，其餘欄位逐一補值。
func normalizeRecipe(payload map[string]any, mode common.GameMode, ingredients []common.Ingredient) common.RecipePlan {
	fb := FallbackRecipe(mode, ingredients)

	plan := common.RecipePlan{
		DishName:    common.SafeText(payload["dishName"]),
		DishNameEn:  common.SafeText(payload["dishNameEn"]),
		Description: common.SafeText(payload["description"]),
		Hints:       normalizeStringList(payload["hints"], 3, fb.Hints),
	}
	if plan.DishName == "" {
		plan.DishName = fb.DishName
	}
	if plan.DishNameEn == "" {
		plan.DishNameEn = fb.DishNameEn
	}
	if plan.Description == "" {
		plan.Description = fb.Description
	}

	detail := asMap(payload["recipe"])
	steps := normalizeSteps(detail["steps"])
	if len(steps) < 4 {
		steps = fb.Recipe.Steps
	}
	plan.Recipe = common.RecipeDetail{
		Steps:     steps,
		Tips:      common.SafeText(detail["tips"]),
		TotalTime: common.SafeText(detail["totalTime"]),
	}
	if plan.Recipe.Tips == "" {
		plan.Recipe.Tips = fb.Recipe.Tips
	}
	if plan.Recipe.TotalTime == "" {
		plan.Recipe.TotalTime = fb.Recipe.TotalTime
	}

	return plan
}

// normalizeCookingAction 收斂模型回傳的烹飪動作。
// result 與 reaction 是必要欄位，缺漏時回報錯誤讓呼叫端走確定性結果。
func normalizeCookingAction(payload map[string]any) (common.CookingActionResponse, error) {
	action := common.CookingActionResponse{
		Result:   common.SafeText(payload["result"]),
		ResultEn: common.SafeText(payload["resultEn"]),
		Reaction: common.SafeText(payload["reaction"]),
		Emoji:    common.SafeText(payload["emoji"]),
	}
	if action.Result == "" || action.Reaction == "" {
		return common.CookingActionResponse{}, fmt.Errorf("action response missing result or reaction")
	}
	return action, nil
}

// normalizeEvaluation 收斂模型回傳的評價，缺漏欄位逐一以確定性評價補值
func normalizeEvaluation(payload map[string]any, fb common.CookingEvaluation) common.CookingEvaluation {
	out := common.CookingEvaluation{
		Evaluation:          common.SafeText(payload["evaluation"]),
		MissedSteps:         normalizeStringList(payload["missedSteps"], 4, fb.MissedSteps),
		BonusPoints:         normalizeStringList(payload["bonusPoints"], 4, fb.BonusPoints),
		FullRecipeNarrative: common.SafeText(payload["fullRecipeNarrative"]),
	}

	if rate, ok := common.SafeNumber(payload["matchRate"]); ok {
		out.MatchRate = int(common.Clamp(math.Round(rate), 0, 100))
	} else {
		out.MatchRate = fb.MatchRate
	}
	if out.Evaluation == "" {
		out.Evaluation = fb.Evaluation
	}
	if out.FullRecipeNarrative == "" {
		out.FullRecipeNarrative = fb.FullRecipeNarrative
	}

	return out
}
