package repository

import (
	"errors"

	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"gorm.io/gorm"
)

type (
	QuizRepository interface {
		Create(db *gorm.DB, result *entity.QuizResult) error
		FindLatestByUserID(db *gorm.DB, userID string) (*entity.QuizResult, error)
	}

	quizRepository struct {
		db *gorm.DB
	}
)

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(db *gorm.DB, result *entity.QuizResult) error {
	if db == nil {
		db = r.db
	}
	return db.Create(result).Error
}

func (r *quizRepository) FindLatestByUserID(db *gorm.DB, userID string) (*entity.QuizResult, error) {
	if db == nil {
		db = r.db
	}
	var result entity.QuizResult
	err := db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
