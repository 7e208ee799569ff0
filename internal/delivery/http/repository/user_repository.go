package repository

import (
	"errors"

	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"gorm.io/gorm"
)

type (
	// UserRepository is the user-record store: get, put, exists.
	UserRepository interface {
		FindByID(db *gorm.DB, id string) (*entity.User, error)
		FindByEmail(db *gorm.DB, email string) (*entity.User, error)
		ExistsByEmail(db *gorm.DB, email string) (bool, error)
		Save(db *gorm.DB, user *entity.User) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID returns nil, nil when the user does not exist.
func (r *userRepository) FindByID(db *gorm.DB, id string) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns nil, nil when the user does not exist.
func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if db == nil {
		db = r.db
	}
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Save(db *gorm.DB, user *entity.User) error {
	if db == nil {
		db = r.db
	}
	return db.Save(user).Error
}
