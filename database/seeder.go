package database

import (
	"fmt"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/repository"
	"github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/auth"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/catalog"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Demo account matching the sample data students are shown.
const (
	DemoUserEmail    = "student@example.com"
	DemoUserPassword = "12345"
)

// SeedColleges upserts the catalog at path, so it is safe to run on every start.
func SeedColleges(db *gorm.DB, path string, log *logrus.Logger) error {
	colleges, found, err := catalog.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load colleges: %w", err)
	}
	if !found {
		log.WithField("path", path).Warn("college file not found, seeding defaults")
	}

	if err := repository.NewCollegeRepository(db).Upsert(nil, colleges); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}

	log.WithField("colleges", len(colleges)).Info("colleges seeded")
	return nil
}

// SeedDemoUser creates the demo student once.
func SeedDemoUser(db *gorm.DB, log *logrus.Logger) error {
	users := repository.NewUserRepository(db)

	exists, err := users.ExistsByEmail(nil, DemoUserEmail)
	if err != nil {
		return err
	}
	if exists {
		log.Debug("demo user already seeded, skipping")
		return nil
	}

	hash, err := auth.HashPassword(DemoUserPassword)
	if err != nil {
		return err
	}

	user := &entity.User{
		ID:               uuid.NewString(),
		Email:            DemoUserEmail,
		PasswordHash:     hash,
		Name:             "Student User",
		Qualification:    "12th",
		SchoolBackground: "Science Stream",
		Marks:            "85%",
		Subjects:         "Maths, Physics, Computer Science",
		Interests:        "AI, Web Development, Data Science",
		Skills:           "Python, HTML, CSS",
		CareerGoal:       "Software Engineer",
		College:          "Government College of Engineering",
		Joined:           "2025",
		Guidelines:       "Focus on AI & Data Science for future scope.",
	}
	if err := users.Save(nil, user); err != nil {
		return fmt.Errorf("failed to seed demo user: %w", err)
	}

	log.WithField("email", DemoUserEmail).Info("demo user seeded")
	return nil
}
