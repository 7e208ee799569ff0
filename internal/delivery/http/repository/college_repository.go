package repository

import (
	"errors"

	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CollegeRepository interface {
		// College operations
		FindAll(db *gorm.DB) ([]entity.College, error)
		FindByID(db *gorm.DB, id uint) (*entity.College, error)
		Upsert(db *gorm.DB, colleges []entity.College) error

		// Application operations
		CreateApplication(db *gorm.DB, application *entity.CollegeApplication) error
		ExistsApplication(db *gorm.DB, userID string, collegeID uint) (bool, error)
		FindApplicationsByUserID(db *gorm.DB, userID string) ([]entity.CollegeApplication, error)
	}

	collegeRepository struct {
		db *gorm.DB
	}
)

func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

// College operations
func (r *collegeRepository) FindAll(db *gorm.DB) ([]entity.College, error) {
	if db == nil {
		db = r.db
	}
	var colleges []entity.College
	err := db.Order("id ASC").Find(&colleges).Error
	return colleges, err
}

func (r *collegeRepository) FindByID(db *gorm.DB, id uint) (*entity.College, error) {
	if db == nil {
		db = r.db
	}
	var college entity.College
	err := db.Where("id = ?", id).First(&college).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &college, nil
}

func (r *collegeRepository) Upsert(db *gorm.DB, colleges []entity.College) error {
	if db == nil {
		db = r.db
	}
	if len(colleges) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "district", "type", "fields", "courses", "sports_quota", "updated_at"}),
	}).Create(&colleges).Error
}

// Application operations
func (r *collegeRepository) CreateApplication(db *gorm.DB, application *entity.CollegeApplication) error {
	if db == nil {
		db = r.db
	}
	return db.Create(application).Error
}

func (r *collegeRepository) ExistsApplication(db *gorm.DB, userID string, collegeID uint) (bool, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.CollegeApplication{}).
		Where("user_id = ? AND college_id = ?", userID, collegeID).
		Count(&count).Error
	return count > 0, err
}

func (r *collegeRepository) FindApplicationsByUserID(db *gorm.DB, userID string) ([]entity.CollegeApplication, error) {
	if db == nil {
		db = r.db
	}
	var applications []entity.CollegeApplication
	err := db.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&applications).Error
	return applications, err
}
