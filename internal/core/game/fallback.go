package game

import (
	"encoding/base64"
	"fmt"
	"html"
	"math"
	"strings"
	"unicode"

	"github.com/andysooho/cooking-rumi/internal/pkg/common"
)

// actionTable 已知 (食材, 道具) 組合的固定結果
var actionTable = map[string]common.CookingActionResponse{
	"양파|도마": {
		Result:   "다진 양파",
		ResultEn: "chopped onion",
		Reaction: "양파를 먼저 정리하면 조리 흐름이 깔끔해져!",
		Emoji:    "🔪",
	},
	"마늘|도마": {
		Result:   "다진 마늘",
		ResultEn: "minced garlic",
		Reaction: "좋아, 향을 내기 좋은 준비가 됐어.",
		Emoji:    "🔪",
	},
	"토마토|도마": {
		Result:   "다진 토마토",
		ResultEn: "diced tomato",
		Reaction: "토마토를 잘게 썰면 소스가 더 빨리 완성돼.",
		Emoji:    "🔪",
	},
	"달걀|프라이팬": {
		Result:   "스크램블 에그",
		ResultEn: "scrambled eggs",
		Reaction: "부드럽게 익혔네. 타이밍이 좋아.",
		Emoji:    "🍳",
	},
	"파스타면|냄비": {
		Result:   "삶은 파스타면",
		ResultEn: "boiled pasta",
		Reaction: "면을 먼저 삶아두는 선택, 아주 안정적이야.",
		Emoji:    "🫕",
	},
	"다진 마늘|프라이팬": {
		Result:   "볶은 마늘",
		ResultEn: "sauteed garlic",
		Reaction: "향이 올라오기 시작했어. 좋은 출발이야!",
		Emoji:    "🔥",
	},
	"다진 양파|프라이팬": {
		Result:   "볶은 양파",
		ResultEn: "sauteed onion",
		Reaction: "양파 단맛을 끌어내는 중이야.",
		Emoji:    "🔥",
	},
	"다진 토마토|냄비": {
		Result:   "토마토 소스",
		ResultEn: "tomato sauce",
		Reaction: "소스 베이스가 완성됐어.",
		Emoji:    "🍅",
	},
	"삶은 파스타면|믹싱볼": {
		Result:   "버무린 파스타면",
		ResultEn: "mixed pasta",
		Reaction: "이제 소스와 합치면 마무리 단계야.",
		Emoji:    "🥣",
	},
	"버무린 파스타면|냄비": {
		Result:   "토마토 파스타",
		ResultEn: "tomato pasta",
		Reaction: "좋아, 메인 요리 형태가 잡혔어!",
		Emoji:    "🍝",
	},
	"볶은 양파|냄비": {
		Result:   "양파 베이스 소스",
		ResultEn: "onion base sauce",
		Reaction: "깊은 맛을 만드는 좋은 베이스야.",
		Emoji:    "🫕",
	},
	"생선|그릴": {
		Result:   "구운 생선",
		ResultEn: "grilled fish",
		Reaction: "생선 결이 좋아. 접시에 올리기 직전이야.",
		Emoji:    "🐟",
	},
	"생선|프라이팬": {
		Result:   "팬 시어드 생선",
		ResultEn: "pan-seared fish",
		Reaction: "겉면 색이 잘 나왔어.",
		Emoji:    "🐟",
	},
}

// toolHint 未知組合時每種道具對應的結果字尾與表情符號
type toolHint struct {
	Suffix string
	Emoji  string
}

var toolHints = map[string]toolHint{
	"도마":  {Suffix: "손질 재료", Emoji: "🔪"},
	"프라이팬": {Suffix: "볶은 재료", Emoji: "🍳"},
	"냄비":  {Suffix: "끓인 재료", Emoji: "🫕"},
	"믹싱볼": {Suffix: "버무린 재료", Emoji: "🥣"},
	"오븐":  {Suffix: "구운 재료", Emoji: "🔥"},
	"그릴":  {Suffix: "그릴 재료", Emoji: "🔥"},
	"화로":  {Suffix: "익힌 재료", Emoji: "🔥"},
}

// keywordEntry 檔名關鍵字與對應食材
type keywordEntry struct {
	Keyword  string
	Name     string
	NameEn   string
	Category string
}

// 關鍵字表依固定順序比對，輸出順序即表中順序
var filenameKeywords = []keywordEntry{
	{Keyword: "onion", Name: "양파", NameEn: "onion", Category: "채소"},
	{Keyword: "egg", Name: "달걀", NameEn: "egg", Category: "유제품/계란"},
	{Keyword: "pasta", Name: "파스타면", NameEn: "pasta", Category: "면"},
	{Keyword: "tomato", Name: "토마토", NameEn: "tomato", Category: "채소"},
	{Keyword: "fish", Name: "생선", NameEn: "fish", Category: "해산물"},
	{Keyword: "garlic", Name: "마늘", NameEn: "garlic", Category: "채소"},
}

// FallbackIngredientsFromFileNames 依上傳檔名推測食材。
// 任何關鍵字都沒命中時，回傳固定的六種基本食材，確保遊戲一定能開始。
func FallbackIngredientsFromFileNames(fileNames []string) []common.Ingredient {
	lowered := make([]string, len(fileNames))
	for i, name := range fileNames {
		lowered[i] = strings.ToLower(name)
	}

	var fromNames []common.Ingredient
	for _, entry := range filenameKeywords {
		matched := false
		for _, name := range lowered {
			if strings.Contains(name, entry.Keyword) {
				matched = true
				break
			}
		}
		if matched {
			fromNames = append(fromNames, common.Ingredient{
				ID:       entry.NameEn,
				Name:     entry.Name,
				NameEn:   entry.NameEn,
				Category: entry.Category,
				Source:   common.SourceFridge,
			})
		}
	}

	if len(fromNames) > 0 {
		return fromNames
	}

	defaults := make([]common.Ingredient, 0, len(filenameKeywords))
	for _, entry := range filenameKeywords {
		defaults = append(defaults, common.Ingredient{
			ID:       entry.NameEn,
			Name:     entry.Name,
			NameEn:   entry.NameEn,
			Category: entry.Category,
			Source:   common.SourceFridge,
		})
	}
	return defaults
}

func hasIngredient(ingredients []common.Ingredient, target string) bool {
	for _, item := range ingredients {
		if item.Name == target {
			return true
		}
	}
	return false
}

// dishNameFromIngredients 以食材組合決定料理名稱，措辭依模式不同
func dishNameFromIngredients(mode common.GameMode, ingredients []common.Ingredient) string {
	hasPasta := hasIngredient(ingredients, "파스타면")
	hasTomato := hasIngredient(ingredients, "토마토")
	hasFish := hasIngredient(ingredients, "생선")
	hasEgg := hasIngredient(ingredients, "달걀")

	if hasPasta && hasTomato && hasFish {
		if mode == common.ModeDelicious {
			return "생선을 곁들인 토마토 파스타"
		}
		return "바다향 토마토 퓨전 파스타"
	}
	if hasEgg && hasTomato {
		if mode == common.ModeDelicious {
			return "토마토 에그 스크램블"
		}
		return "선라이즈 에그 퓨전"
	}
	if mode == common.ModeDelicious {
		return "냉장고 스페셜 볶음"
	}
	return "루미의 실험적 퓨전 한 접시"
}

// buildStepsForDish 依料理名稱回傳固定步驟序列
func buildStepsForDish(dishName string) []common.RecipeStep {
	if strings.Contains(dishName, "파스타") {
		return []common.RecipeStep{
			{Order: 1, Action: "마늘을 잘게 다진다", Tool: "도마", Ingredients: []string{"마늘"}, Result: "다진 마늘"},
			{Order: 2, Action: "양파를 다진다", Tool: "도마", Ingredients: []string{"양파"}, Result: "다진 양파"},
			{Order: 3, Action: "파스타면을 삶는다", Tool: "냄비", Ingredients: []string{"파스타면"}, Result: "삶은 파스타면"},
			{Order: 4, Action: "다진 양파와 다진 마늘을 볶는다", Tool: "프라이팬", Ingredients: []string{"다진 양파", "다진 마늘"}, Result: "향긋한 소테"},
			{Order: 5, Action: "토마토를 다져 소스를 만든다", Tool: "냄비", Ingredients: []string{"토마토"}, Result: "토마토 소스"},
			{Order: 6, Action: "면과 소스를 섞어 마무리한다", Tool: "믹싱볼", Ingredients: []string{"삶은 파스타면", "토마토 소스"}, Result: "토마토 파스타"},
			{Order: 7, Action: "생선을 노릇하게 굽는다", Tool: "그릴", Ingredients: []string{"생선"}, Result: "구운 생선"},
		}
	}

	return []common.RecipeStep{
		{Order: 1, Action: "양파를 다진다", Tool: "도마", Ingredients: []string{"양파"}, Result: "다진 양파"},
		{Order: 2, Action: "토마토를 다진다", Tool: "도마", Ingredients: []string{"토마토"}, Result: "다진 토마토"},
		{Order: 3, Action: "양파를 팬에서 볶는다", Tool: "프라이팬", Ingredients: []string{"다진 양파"}, Result: "볶은 양파"},
		{Order: 4, Action: "토마토를 냄비에서 졸인다", Tool: "냄비", Ingredients: []string{"다진 토마토"}, Result: "토마토 베이스"},
		{Order: 5, Action: "달걀을 팬에서 익힌다", Tool: "프라이팬", Ingredients: []string{"달걀"}, Result: "스크램블 에그"},
		{Order: 6, Action: "재료를 믹싱볼에 섞어 완성한다", Tool: "믹싱볼", Ingredients: []string{"볶은 양파", "토마토 베이스", "스크램블 에그"}, Result: "루미 스페셜"},
	}
}

// FallbackRecipe 產生不依賴模型的完整食譜
func FallbackRecipe(mode common.GameMode, ingredients []common.Ingredient) common.RecipePlan {
	dishName := dishNameFromIngredients(mode, ingredients)

	var hints []string
	if mode == common.ModeDelicious {
		hints = []string{
			"풍미를 쌓기 위해 향채를 먼저 다루는 요리야.",
			"소스가 요리의 중심이 되는 한 접시야.",
			"중간 단계 재료를 조합하면 완성에 가까워져.",
		}
	} else {
		hints = []string{
			"재료의 경계를 섞어 새로운 질감을 만드는 요리야.",
			"불 조절과 조합 순서가 창의성을 결정해.",
			"기본 재료를 두 번 이상 변형해보면 힌트가 보여.",
		}
	}

	plan := common.RecipePlan{
		DishName: dishName,
		Hints:    hints,
		Recipe: common.RecipeDetail{
			Steps:     buildStepsForDish(dishName),
			TotalTime: "20~30분",
		},
	}

	if mode == common.ModeDelicious {
		plan.DishNameEn = "Chef's Fridge Signature"
		plan.Description = "냉장고 재료를 정석 순서로 쌓아 올린 풍미 중심 레시피입니다."
		plan.Recipe.Tips = "향채를 먼저 볶아 향을 충분히 올린 뒤 메인 재료를 넣으세요."
	} else {
		plan.DishNameEn = "Rumi Fusion Special"
		plan.Description = "익숙한 재료를 새로운 단계로 변형해 만든 실험적 퓨전 레시피입니다."
		plan.Recipe.Tips = "한 번 처리한 재료를 다른 도구로 다시 변형해 독창성을 높이세요."
	}

	return plan
}

// FallbackCookingAction 回傳 (食材, 道具) 的確定性結果。
// 不在表內的組合用道具字尾合成結果名稱。
func FallbackCookingAction(ingredient, tool string) common.CookingActionResponse {
	if direct, ok := actionTable[ingredient+"|"+tool]; ok {
		return direct
	}

	hint, ok := toolHints[tool]
	if !ok {
		hint = toolHint{Suffix: "조리된 재료", Emoji: "🍽️"}
	}
	return common.CookingActionResponse{
		Result:   fmt.Sprintf("%s %s", ingredient, hint.Suffix),
		Reaction: fmt.Sprintf("%s을(를) 활용해 새로운 형태로 바꿨어. 다음 단계로 이어가 보자!", tool),
		Emoji:    hint.Emoji,
	}
}

// normalizeActionText 比對前先轉小寫並去除所有空白
func normalizeActionText(input string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(input) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// actionPrefix 取動作文字的前 6 個字元作比對鍵
func actionPrefix(normalized string) string {
	runes := []rune(normalized)
	if len(runes) > 6 {
		runes = runes[:6]
	}
	return string(runes)
}

// EstimateMatchRate 從食譜與操作紀錄估算 0~100 的吻合度。
// 空紀錄回傳 0；只要有任何紀錄，結果一定落在 [10, 99]，避免極端分數打擊玩家。
// 前綴子字串比對是刻意保留的粗略做法，不是正式的評分引擎。
func EstimateMatchRate(recipe common.RecipePlan, logs []common.CookingLog) int {
	if len(logs) == 0 {
		return 0
	}

	actualActions := make([]string, len(logs))
	for i, log := range logs {
		actualActions[i] = normalizeActionText(log.Action)
	}

	total := len(recipe.Recipe.Steps)
	if total == 0 {
		return 10
	}

	matched := 0
	for _, step := range recipe.Recipe.Steps {
		prefix := actionPrefix(normalizeActionText(step.Action))
		for _, actual := range actualActions {
			if strings.Contains(actual, prefix) {
				matched++
				break
			}
		}
	}

	coverage := math.Round(float64(matched) / float64(total) * 100)
	depthBonus := math.Min(20, float64(len(logs))*3)
	score := math.Round(coverage*0.8 + depthBonus)
	return int(common.Clamp(score, 10, 99))
}

// FallbackEvaluation 產生不依賴模型的料理評價
func FallbackEvaluation(mode common.GameMode, recipe common.RecipePlan, logs []common.CookingLog, finalDish string) common.CookingEvaluation {
	matchRate := EstimateMatchRate(recipe, logs)

	// 紀錄中從未出現該步驟道具的，視為漏掉的步驟，最多取前 3 項
	var missedSteps []string
	for _, step := range recipe.Recipe.Steps {
		used := false
		for _, log := range logs {
			if log.Tool == step.Tool {
				used = true
				break
			}
		}
		if !used {
			missedSteps = append(missedSteps, step.Action)
			if len(missedSteps) == 3 {
				break
			}
		}
	}
	if len(missedSteps) == 0 {
		missedSteps = []string{"핵심 향미 단계를 조금 더 살리면 완성도가 올라가."}
	}

	var bonusPoints []string
	if len(logs) >= 4 {
		bonusPoints = append(bonusPoints, "조리 단계를 여러 번 이어가며 요리 체인을 만든 점이 좋아.")
	}
	if strings.Contains(finalDish, "파스타") {
		bonusPoints = append(bonusPoints, "최종 요리 이름이 테마와 잘 맞아.")
	}
	if mode == common.ModeCreative {
		bonusPoints = append(bonusPoints, "창의 모드답게 재료를 다양하게 변형했어.")
	} else {
		bonusPoints = append(bonusPoints, "정석 조리 순서를 지키려는 시도가 좋았어.")
	}

	evaluation := fmt.Sprintf("좋은 시도였어! '%s'까지 도달했지만 몇 단계만 다듬으면 더 완성도가 높아져.", finalDish)
	if matchRate >= 80 {
		evaluation = fmt.Sprintf("호호호~ 굉장히 훌륭했어! '%s'는 내가 생각한 방향과 매우 가깝네.", finalDish)
	}

	var narrative []string
	for _, step := range recipe.Recipe.Steps {
		narrative = append(narrative, fmt.Sprintf("%d. %s", step.Order, step.Action))
	}

	return common.CookingEvaluation{
		MatchRate:           matchRate,
		Evaluation:          evaluation,
		MissedSteps:         missedSteps,
		BonusPoints:         bonusPoints,
		FullRecipeNarrative: strings.Join(narrative, "\n"),
	}
}

// PickFinalDishFromLogs 取最後一筆紀錄的結果當最終料理名稱
func PickFinalDishFromLogs(logs []common.CookingLog) string {
	if len(logs) == 0 {
		return "미완성 요리"
	}
	if result := logs[len(logs)-1].Result; result != "" {
		return result
	}
	return "미완성 요리"
}

// FallbackImageDataURL 產生內嵌標籤文字的 SVG 佔位圖。
// 完全確定性、不依賴外部資源，保證前端永遠有東西可以渲染。
func FallbackImageDataURL(label, tone string) string {
	if tone == "" {
		tone = "#ffb347"
	}
	runes := []rune(label)
	if len(runes) > 14 {
		runes = runes[:14]
	}
	// 標籤要進 XML 文字節點，& 與 < 必須跳脫
	safe := html.EscapeString(string(runes))

	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="128" height="128">
<rect width="128" height="128" rx="18" fill="#1f2430"/>
<rect x="8" y="8" width="112" height="112" rx="14" fill="%s"/>
<text x="64" y="68" text-anchor="middle" font-size="14" font-family="monospace" fill="#1f2430">%s</text>
</svg>`, tone, safe)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
