package usecase

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/repository"
	internalEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultPerPage = 6
	maxNearby      = 3
)

type CollegeUsecase interface {
	List(ctx context.Context, filter entity.CollegeFilter) (*entity.CollegePage, *entity.PageMeta, error)
	Detail(ctx context.Context, collegeID uint, userID string) (*entity.CollegeDetail, error)
	Apply(ctx context.Context, userID string, collegeID uint) (*entity.ApplyResponse, error)
	Recommended(ctx context.Context, userID string) (*entity.RecommendedColleges, error)
	ExamPrep(ctx context.Context, userID string, now time.Time) (*entity.ExamPrep, error)
	Timeline(ctx context.Context) *entity.Timeline
}

type CollegeConfig struct {
	DB       *gorm.DB
	Log      *logrus.Logger
	Users    repository.UserRepository
	Colleges repository.CollegeRepository
}

type collegeUsecase struct {
	cfg CollegeConfig
}

func NewCollegeUsecase(cfg CollegeConfig) CollegeUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &collegeUsecase{cfg: cfg}
}

func (u *collegeUsecase) List(ctx context.Context, filter entity.CollegeFilter) (*entity.CollegePage, *entity.PageMeta, error) {
	rows, err := u.cfg.Colleges.FindAll(u.cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get colleges: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	district := strings.ToLower(strings.TrimSpace(filter.District))
	ctype := strings.ToLower(strings.TrimSpace(filter.Type))

	filtered := make([]internalEntity.College, 0, len(rows))
	for _, c := range rows {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if district != "" && strings.ToLower(c.District) != district {
			continue
		}
		if ctype != "" && strings.ToLower(c.Type) != ctype {
			continue
		}
		filtered = append(filtered, c)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	total := len(filtered)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	meta := &entity.PageMeta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(perPage))),
	}

	return &entity.CollegePage{
		Colleges:     mapper.ToColleges(filtered[start:end]),
		AllDistricts: uniqueDistricts(rows),
	}, meta, nil
}

func (u *collegeUsecase) Detail(ctx context.Context, collegeID uint, userID string) (*entity.CollegeDetail, error) {
	rows, err := u.cfg.Colleges.FindAll(u.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to get colleges: %w", err)
	}

	var college *internalEntity.College
	for i := range rows {
		if rows[i].ID == collegeID {
			college = &rows[i]
			break
		}
	}
	if college == nil {
		return nil, ErrCollegeNotFound
	}

	nearby := make([]internalEntity.College, 0, maxNearby)
	for _, c := range rows {
		if len(nearby) == maxNearby {
			break
		}
		if c.District == college.District && c.ID != college.ID {
			nearby = append(nearby, c)
		}
	}

	applied := false
	if userID != "" {
		applied, err = u.cfg.Colleges.ExistsApplication(u.cfg.DB, userID, collegeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check application: %w", err)
		}
	}

	return &entity.CollegeDetail{
		College: mapper.ToCollege(*college),
		Nearby:  mapper.ToColleges(nearby),
		MapsURL: MapsURL(college.Name, college.District),
		Applied: applied,
	}, nil
}

func (u *collegeUsecase) Apply(ctx context.Context, userID string, collegeID uint) (*entity.ApplyResponse, error) {
	college, err := u.cfg.Colleges.FindByID(u.cfg.DB, collegeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get college: %w", err)
	}
	if college == nil {
		return nil, ErrCollegeNotFound
	}

	exists, err := u.cfg.Colleges.ExistsApplication(u.cfg.DB, userID, collegeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check application: %w", err)
	}
	if exists {
		return &entity.ApplyResponse{CollegeID: collegeID, AlreadyApplied: true}, nil
	}

	application := &internalEntity.CollegeApplication{
		UserID:    userID,
		CollegeID: collegeID,
	}
	if err := u.cfg.Colleges.CreateApplication(u.cfg.DB, application); err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"user_id":    userID,
		"college_id": collegeID,
	}).Info("college application submitted")

	return &entity.ApplyResponse{CollegeID: collegeID}, nil
}

func (u *collegeUsecase) Recommended(ctx context.Context, userID string) (*entity.RecommendedColleges, error) {
	user, err := u.cfg.Users.FindByID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.RecommendedField == nil || *user.RecommendedField == "" {
		return nil, ErrQuizNotTaken
	}
	field := *user.RecommendedField

	rows, err := u.cfg.Colleges.FindAll(u.cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to get colleges: %w", err)
	}

	lowField := strings.ToLower(field)
	matched := make([]internalEntity.College, 0)
	for _, c := range rows {
		if strings.Contains(strings.ToLower(c.Fields), lowField) {
			matched = append(matched, c)
		}
	}

	return &entity.RecommendedColleges{
		Field:    field,
		Colleges: mapper.ToColleges(matched),
	}, nil
}

func (u *collegeUsecase) ExamPrep(ctx context.Context, userID string, now time.Time) (*entity.ExamPrep, error) {
	user, err := u.cfg.Users.FindByID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	field := generalExamField
	if user.RecommendedField != nil && *user.RecommendedField != "" {
		field = *user.RecommendedField
	}

	return &entity.ExamPrep{
		Field: field,
		Exams: ExamsFor(field, now),
	}, nil
}

func (u *collegeUsecase) Timeline(ctx context.Context) *entity.Timeline {
	steps := make([]entity.TimelineStep, len(timelineSteps))
	copy(steps, timelineSteps)
	return &entity.Timeline{
		Steps:       steps,
		CurrentStep: timelineCurrentStep,
	}
}

func MapsURL(name, district string) string {
	return "https://www.google.com/maps?q=" + url.QueryEscape(name+" "+district) + "&output=embed"
}

func uniqueDistricts(rows []internalEntity.College) []string {
	seen := make(map[string]struct{}, len(rows))
	districts := make([]string, 0)
	for _, c := range rows {
		if _, ok := seen[c.District]; ok {
			continue
		}
		seen[c.District] = struct{}{}
		districts = append(districts, c.District)
	}
	sort.Strings(districts)
	return districts
}
