package config

import (
	"context"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/handler"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/middleware"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/repository"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/route"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/usecase"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/auth"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/llm"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Ctx       context.Context
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func LLMConfig(config *viper.Viper) llm.Config {
	return llm.Config{
		Provider:    config.GetString("llm.provider"),
		APIKey:      config.GetString("llm.api_key"),
		Model:       config.GetString("llm.model"),
		BaseURL:     config.GetString("llm.base_url"),
		MaxTokens:   config.GetInt("llm.max_tokens"),
		Temperature: config.GetFloat64("llm.temperature"),
	}
}

// NewChatProvider returns nil when no live backend can be used; chat then
// always answers from the fallback catalog.
func NewChatProvider(ctx context.Context, config *viper.Viper, log *logrus.Logger) llm.ChatProvider {
	cfg := LLMConfig(config)
	provider, err := llm.NewChatProvider(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("live chat disabled")
		return nil
	}
	if provider == nil {
		log.WithField("provider", cfg.Provider).Info("no live chat backend configured, using fallback replies")
		return nil
	}
	log.WithField("provider", provider.Name()).Info("live chat backend ready")
	return provider
}

func Bootstrap(config *BootstrapConfig) {
	ctx := config.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	tokens := auth.NewTokenManager(config.Config.GetString("auth.jwt_secret"), config.Config.GetDuration("auth.token_ttl"))

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
		Tokens: tokens,
	})

	userRepo := repository.NewUserRepository(config.DB)
	chatRepo := repository.NewChatRepository(config.DB)
	quizRepo := repository.NewQuizRepository(config.DB)
	collegeRepo := repository.NewCollegeRepository(config.DB)

	accountUsecase := usecase.NewAccountUsecase(usecase.AccountConfig{
		DB:       config.DB,
		Log:      config.Log,
		Tokens:   tokens,
		Users:    userRepo,
		Chats:    chatRepo,
		Colleges: collegeRepo,
	})
	careerUsecase := usecase.NewCareerUsecase(usecase.CareerConfig{
		DB:           config.DB,
		Log:          config.Log,
		Provider:     NewChatProvider(ctx, config.Config, config.Log),
		SystemPrompt: config.Config.GetString("llm.system_prompt"),
		LiveTimeout:  config.Config.GetDuration("llm.timeout"),
		Users:        userRepo,
		Chats:        chatRepo,
		Quizzes:      quizRepo,
	})
	collegeUsecase := usecase.NewCollegeUsecase(usecase.CollegeConfig{
		DB:       config.DB,
		Log:      config.Log,
		Users:    userRepo,
		Colleges: collegeRepo,
	})

	route.Setup(&route.RouteConfig{
		Api:            config.Api,
		Middleware:     mid,
		AccountHandler: handler.NewAccountHandler(config.Validator, config.Log, accountUsecase),
		CareerHandler:  handler.NewCareerHandler(config.Validator, config.Log, careerUsecase),
		CollegeHandler: handler.NewCollegeHandler(config.Validator, config.Log, collegeUsecase),
		ParentsHandler: handler.NewParentsHandler(config.Validator, config.Log, usecase.NewParentsUsecase()),
	})
}
