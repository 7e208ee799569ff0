package entity

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage - One entry of a user's conversation, ordered by Position
type ChatMessage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    string         `gorm:"size:36;not null;index:idx_chat_user_position,priority:1" json:"user_id"`
	Position  int            `gorm:"not null;index:idx_chat_user_position,priority:2" json:"position"`
	Role      string         `gorm:"size:20;not null" json:"role"` // user, assistant
	Content   string         `gorm:"type:text;not null" json:"content"`
	Source    string         `gorm:"size:20" json:"source"` // live, fallback, seed
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
