package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/repository"
	internalEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/auth"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/mapper"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AccountUsecase interface {
	Register(ctx context.Context, req entity.RegisterRequest) (*entity.AuthResponse, error)
	Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req entity.UpdateProfileRequest) (*entity.Profile, error)
}

type AccountConfig struct {
	DB       *gorm.DB
	Log      *logrus.Logger
	Tokens   *auth.TokenManager
	Users    repository.UserRepository
	Chats    repository.ChatRepository
	Colleges repository.CollegeRepository
}

type accountUsecase struct {
	cfg AccountConfig
}

func NewAccountUsecase(cfg AccountConfig) AccountUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &accountUsecase{cfg: cfg}
}

func (u *accountUsecase) Register(ctx context.Context, req entity.RegisterRequest) (*entity.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	exists, err := u.cfg.Users.ExistsByEmail(u.cfg.DB, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = titleCase(strings.SplitN(email, "@", 2)[0])
	}

	user := &internalEntity.User{
		ID:               uuid.NewString(),
		Email:            email,
		PasswordHash:     hash,
		Name:             name,
		Qualification:    req.Qualification,
		SchoolBackground: req.SchoolBackground,
		Marks:            req.Marks,
		Subjects:         req.Subjects,
		Interests:        req.Interests,
		Skills:           req.Skills,
		CareerGoal:       req.CareerGoal,
	}
	if err := u.cfg.Users.Save(u.cfg.DB, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	greeting := []internalEntity.ChatMessage{seedMessage(user.ID, GreetingMessage)}
	if err := u.cfg.Chats.Append(u.cfg.DB, greeting); err != nil {
		u.cfg.Log.WithError(err).WithField("user_id", user.ID).Warn("failed to seed chat history")
	}

	u.cfg.Log.WithField("user_id", user.ID).Info("user registered")
	return u.authResponse(user, nil)
}

func (u *accountUsecase) Login(ctx context.Context, req entity.LoginRequest) (*entity.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := u.cfg.Users.FindByEmail(u.cfg.DB, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := auth.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	applied, err := u.cfg.Colleges.FindApplicationsByUserID(u.cfg.DB, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	return u.authResponse(user, applied)
}

func (u *accountUsecase) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	user, err := u.findUser(userID)
	if err != nil {
		return nil, err
	}
	applied, err := u.cfg.Colleges.FindApplicationsByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	profile := mapper.ToProfile(user, applied)
	return &profile, nil
}

func (u *accountUsecase) UpdateProfile(ctx context.Context, userID string, req entity.UpdateProfileRequest) (*entity.Profile, error) {
	user, err := u.findUser(userID)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		src *string
		dst *string
	}{
		{req.Name, &user.Name},
		{req.Qualification, &user.Qualification},
		{req.SchoolBackground, &user.SchoolBackground},
		{req.Marks, &user.Marks},
		{req.Subjects, &user.Subjects},
		{req.College, &user.College},
		{req.Joined, &user.Joined},
		{req.Interests, &user.Interests},
		{req.Skills, &user.Skills},
		{req.CareerGoal, &user.CareerGoal},
		{req.Guidelines, &user.Guidelines},
		{req.ProfilePic, &user.ProfilePic},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if err := u.cfg.Users.Save(u.cfg.DB, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	applied, err := u.cfg.Colleges.FindApplicationsByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}
	profile := mapper.ToProfile(user, applied)
	return &profile, nil
}

func (u *accountUsecase) authResponse(user *internalEntity.User, applied []internalEntity.CollegeApplication) (*entity.AuthResponse, error) {
	token, err := u.cfg.Tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &entity.AuthResponse{
		Token: token,
		User:  mapper.ToProfile(user, applied),
	}, nil
}

func (u *accountUsecase) findUser(userID string) (*internalEntity.User, error) {
	user, err := u.cfg.Users.FindByID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// titleCase upper-cases the first letter of every letter run: "john.doe" -> "John.Doe".
func titleCase(s string) string {
	var sb strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				sb.WriteRune(unicode.ToLower(r))
			} else {
				sb.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		sb.WriteRune(r)
		prevLetter = false
	}
	return sb.String()
}
