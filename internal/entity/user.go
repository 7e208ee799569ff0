package entity

import (
	"time"

	"gorm.io/gorm"
)

// User - Student account plus profile fields
type User struct {
	ID               string         `gorm:"primaryKey;size:36" json:"id"`
	Email            string         `gorm:"uniqueIndex;size:255;not null" json:"email"` // always lower-cased
	PasswordHash     string         `gorm:"size:255;not null" json:"-"`
	Name             string         `gorm:"size:120" json:"name"`
	Qualification    string         `gorm:"size:120" json:"qualification"`
	SchoolBackground string         `gorm:"size:200" json:"school_background"`
	Marks            string         `gorm:"size:50" json:"marks"`
	Subjects         string         `gorm:"type:text" json:"subjects"`
	Interests        string         `gorm:"type:text" json:"interests"`
	Skills           string         `gorm:"type:text" json:"skills"`
	CareerGoal       string         `gorm:"size:200" json:"career_goal"`
	College          string         `gorm:"size:200" json:"college"`
	Joined           string         `gorm:"size:50" json:"joined"`
	Guidelines       string         `gorm:"type:text" json:"guidelines"`
	ProfilePic       string         `gorm:"size:255" json:"profile_pic"`
	RecommendedField *string        `gorm:"size:50" json:"recommended_field"` // nil until the quiz is taken
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
