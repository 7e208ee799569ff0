package database

import (
	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.ChatMessage{},
		&entity.QuizResult{},
		&entity.College{},
		&entity.CollegeApplication{},
	)
	return err
}
