package entity

import "time"

// QuizResult - One quiz submission and its scoring
type QuizResult struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	UserID           string    `gorm:"size:36;not null;index" json:"user_id"`
	Answers          string    `gorm:"type:text;not null" json:"answers"` // JSON array of 10 strings
	Scores           string    `gorm:"type:text;not null" json:"scores"`  // JSON object category -> score
	RecommendedField string    `gorm:"size:50;not null" json:"recommended_field"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
