package common

// GameMode 遊戲模式
type GameMode string

const (
	// ModeDelicious 正統模式：追求最好吃的做法
	ModeDelicious GameMode = "delicious"
	// ModeCreative 創意模式：追求實驗性的組合
	ModeCreative GameMode = "creative"
)

// ParseGameMode 解析遊戲模式，未知值一律視為正統模式
func ParseGameMode(value any) GameMode {
	if SafeText(value) == string(ModeCreative) {
		return ModeCreative
	}
	return ModeDelicious
}

// IngredientSource 食材來源
type IngredientSource string

const (
	// SourceFridge 玩家上傳的原始食材
	SourceFridge IngredientSource = "fridge"
	// SourceCooked 烹飪動作產生的衍生食材
	SourceCooked IngredientSource = "cooked"
)

// Ingredient 遊戲中的食材
type Ingredient struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	NameEn       string           `json:"nameEn,omitempty"`
	Category     string           `json:"category,omitempty"`
	ImageDataURL string           `json:"imageDataUrl,omitempty"`
	Source       IngredientSource `json:"source"`
}

// RecipeStep 食譜步驟
type RecipeStep struct {
	Order       int      `json:"order"`
	Action      string   `json:"action"`
	Tool        string   `json:"tool"`
	Ingredients []string `json:"ingredients"`
	Result      string   `json:"result,omitempty"`
}

// RecipeDetail 食譜內容
type RecipeDetail struct {
	Steps     []RecipeStep `json:"steps"`
	Tips      string       `json:"tips"`
	TotalTime string       `json:"totalTime"`
}

// RecipePlan 目標料理與其步驟
type RecipePlan struct {
	DishName    string       `json:"dishName"`
	DishNameEn  string       `json:"dishNameEn,omitempty"`
	Description string       `json:"description"`
	Hints       []string     `json:"hints"`
	Recipe      RecipeDetail `json:"recipe"`
}

// CookingLog 一次烹飪動作的紀錄，建立後不再變動
type CookingLog struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	Ingredient string `json:"ingredient"`
	Tool       string `json:"tool"`
	Result     string `json:"result"`
	Reaction   string `json:"reaction"`
	CreatedAt  string `json:"createdAt"`
}

// CookingActionResponse 烹飪動作的結果
type CookingActionResponse struct {
	Result   string `json:"result"`
	ResultEn string `json:"resultEn,omitempty"`
	Reaction string `json:"reaction"`
	Emoji    string `json:"emoji,omitempty"`
}

// CookingEvaluation 料理評價
type CookingEvaluation struct {
	MatchRate           int      `json:"matchRate"`
	Evaluation          string   `json:"evaluation"`
	MissedSteps         []string `json:"missedSteps"`
	BonusPoints         []string `json:"bonusPoints"`
	FullRecipeNarrative string   `json:"fullRecipeNarrative"`
}

// ContentSource 標記回應內容的產生來源
type ContentSource string

const (
	SourceModel    ContentSource = "model"
	SourceFallback ContentSource = "fallback"
	SourceCache    ContentSource = "cache"
)
