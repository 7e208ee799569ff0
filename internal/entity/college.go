package entity

import (
	"time"

	"gorm.io/gorm"
)

// College - Directory entry, ID comes from the data file
type College struct {
	ID          uint           `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string         `gorm:"size:255;not null;index" json:"name"`
	District    string         `gorm:"size:120;index" json:"district"`
	Type        string         `gorm:"size:120" json:"type"`
	Fields      string         `gorm:"size:255" json:"fields"`   // e.g. "Engineering/Tech"
	Courses     string         `gorm:"type:text" json:"courses"` // JSON array
	SportsQuota bool           `gorm:"default:false" json:"sports_quota"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (College) TableName() string {
	return "colleges"
}

// CollegeApplication - A user applying to a college, at most once
type CollegeApplication struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_application_user_college" json:"user_id"`
	CollegeID uint      `gorm:"not null;uniqueIndex:idx_application_user_college" json:"college_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CollegeApplication) TableName() string {
	return "college_applications"
}
