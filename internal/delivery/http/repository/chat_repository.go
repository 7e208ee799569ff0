package repository

import (
	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"gorm.io/gorm"
)

type (
	ChatRepository interface {
		FindByUserID(db *gorm.DB, userID string) ([]entity.ChatMessage, error)
		Append(db *gorm.DB, messages []entity.ChatMessage) error
		// Replace drops the whole history and stores messages in its place.
		Replace(db *gorm.DB, userID string, messages []entity.ChatMessage) error
	}

	chatRepository struct {
		db *gorm.DB
	}
)

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) FindByUserID(db *gorm.DB, userID string) ([]entity.ChatMessage, error) {
	if db == nil {
		db = r.db
	}
	var messages []entity.ChatMessage
	err := db.Where("user_id = ?", userID).Order("position ASC").Find(&messages).Error
	return messages, err
}

func (r *chatRepository) Append(db *gorm.DB, messages []entity.ChatMessage) error {
	if db == nil {
		db = r.db
	}
	if len(messages) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&messages).Error
	})
}

func (r *chatRepository) Replace(db *gorm.DB, userID string, messages []entity.ChatMessage) error {
	if db == nil {
		db = r.db
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.ChatMessage{}).Error; err != nil {
			return err
		}
		if len(messages) == 0 {
			return nil
		}
		return tx.Create(&messages).Error
	})
}
