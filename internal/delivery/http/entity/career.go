package entity

type Category string

const (
	CategoryEngineering Category = "Engineering/Tech"
	CategoryMedicine    Category = "Medicine/Biology"
	CategoryArts        Category = "Arts/Design"
	CategoryBusiness    Category = "Business/Management"
	CategoryEducation   Category = "Education/Research"
)

// Categories is the declaration order, which is also the tie-break order.
var Categories = []Category{
	CategoryEngineering,
	CategoryMedicine,
	CategoryArts,
	CategoryBusiness,
	CategoryEducation,
}

// CategoryScore always holds every category in Categories.
type CategoryScore map[Category]int

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ConversationMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ReplySource string

const (
	ReplySourceLive     ReplySource = "live"
	ReplySourceFallback ReplySource = "fallback"
	ReplySourceSeed     ReplySource = "seed"
)

// Ten answers, positional
type QuizRequest struct {
	Answers []string `json:"answers" validate:"len=10"`
}

type CategoryScoreItem struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
}

type QuizResult struct {
	RecommendedField Category            `json:"recommended_field"`
	Scores           CategoryScore       `json:"scores"`
	Ranking          []CategoryScoreItem `json:"ranking"` // in declaration order
	SubmittedAt      string              `json:"submitted_at,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply  string      `json:"reply"`
	Source ReplySource `json:"source"`
}

type ChatHistoryItem struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
