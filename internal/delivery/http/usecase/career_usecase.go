package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/repository"
	internalEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/llm"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	DefaultSystemPrompt = "You are a helpful AI career counselor for students in Jammu & Kashmir."
	GreetingMessage     = "👋 Hello! I’m your AI career counselor. How can I help today?"
	ResetMessage        = "🔄 Chat reset. 👋 How can I help with your career journey now?"

	defaultLiveTimeout = 20 * time.Second
)

type CareerUsecase interface {
	SubmitQuiz(ctx context.Context, userID string, answers []string) (*entity.QuizResult, error)
	GetLatestQuiz(ctx context.Context, userID string) (*entity.QuizResult, error)
	Chat(ctx context.Context, userID string, message string) (*entity.ChatResponse, error)
	GetChatHistory(ctx context.Context, userID string) ([]entity.ChatHistoryItem, error)
	ResetChat(ctx context.Context, userID string) ([]entity.ChatHistoryItem, error)
}

type CareerConfig struct {
	DB           *gorm.DB
	Log          *logrus.Logger
	Provider     llm.ChatProvider // nil means fallback only
	SystemPrompt string
	LiveTimeout  time.Duration
	Users        repository.UserRepository
	Chats        repository.ChatRepository
	Quizzes      repository.QuizRepository
}

type careerUsecase struct {
	cfg CareerConfig
}

func NewCareerUsecase(cfg CareerConfig) CareerUsecase {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.LiveTimeout <= 0 {
		cfg.LiveTimeout = defaultLiveTimeout
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &careerUsecase{cfg: cfg}
}

func (u *careerUsecase) SubmitQuiz(ctx context.Context, userID string, answers []string) (*entity.QuizResult, error) {
	scores, best, err := ScoreQuiz(answers)
	if err != nil {
		return nil, err
	}

	user, err := u.findUser(userID)
	if err != nil {
		return nil, err
	}

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}

	row := &internalEntity.QuizResult{
		UserID:           userID,
		Answers:          string(answersJSON),
		Scores:           string(scoresJSON),
		RecommendedField: string(best),
	}
	if err := u.cfg.Quizzes.Create(u.cfg.DB, row); err != nil {
		return nil, fmt.Errorf("failed to save quiz result: %w", err)
	}

	field := string(best)
	user.RecommendedField = &field
	if err := u.cfg.Users.Save(u.cfg.DB, user); err != nil {
		return nil, fmt.Errorf("failed to save recommended field: %w", err)
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"field":   field,
	}).Info("quiz scored")

	result := &entity.QuizResult{
		RecommendedField: best,
		Scores:           scores,
		Ranking:          RankScores(scores),
	}
	if !row.CreatedAt.IsZero() {
		result.SubmittedAt = row.CreatedAt.Format(time.RFC3339)
	}
	return result, nil
}

func (u *careerUsecase) GetLatestQuiz(ctx context.Context, userID string) (*entity.QuizResult, error) {
	row, err := u.cfg.Quizzes.FindLatestByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz result: %w", err)
	}
	if row == nil {
		return nil, ErrQuizNotTaken
	}

	scores := make(entity.CategoryScore, len(entity.Categories))
	if err := json.Unmarshal([]byte(row.Scores), &scores); err != nil {
		return nil, fmt.Errorf("failed to parse quiz scores: %w", err)
	}
	for _, category := range entity.Categories {
		if _, ok := scores[category]; !ok {
			scores[category] = 0
		}
	}

	return &entity.QuizResult{
		RecommendedField: entity.Category(row.RecommendedField),
		Scores:           scores,
		Ranking:          RankScores(scores),
		SubmittedAt:      row.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Chat tries the live backend first and falls back to the canned catalog.
// Only the new exchange is persisted; a failed live call changes nothing.
func (u *careerUsecase) Chat(ctx context.Context, userID string, message string) (*entity.ChatResponse, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := u.findUser(userID); err != nil {
		return nil, err
	}

	rows, err := u.loadHistory(userID)
	if err != nil {
		return nil, err
	}
	history := mapper.ToConversation(rows)

	reply, source := u.liveReply(ctx, userID, history, msg)
	if reply == "" {
		reply, err = SelectFallbackReply(msg, history)
		if err != nil {
			return nil, err
		}
		source = entity.ReplySourceFallback
	}

	updated := AppendExchange(history, msg, reply)
	fresh := updated[len(history):]
	newRows := make([]internalEntity.ChatMessage, 0, len(fresh))
	for i, m := range fresh {
		rowSource := string(source)
		if m.Role == entity.RoleUser {
			rowSource = ""
		}
		newRows = append(newRows, internalEntity.ChatMessage{
			UserID:   userID,
			Position: len(history) + i,
			Role:     string(m.Role),
			Content:  m.Content,
			Source:   rowSource,
		})
	}
	if err := u.cfg.Chats.Append(u.cfg.DB, newRows); err != nil {
		return nil, fmt.Errorf("failed to save chat messages: %w", err)
	}

	return &entity.ChatResponse{
		Reply:  reply,
		Source: source,
	}, nil
}

// liveReply returns "" when no backend is configured or it failed for any reason.
func (u *careerUsecase) liveReply(ctx context.Context, userID string, history []entity.ConversationMessage, msg string) (string, entity.ReplySource) {
	if u.cfg.Provider == nil {
		return "", ""
	}

	candidate := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		candidate = append(candidate, llm.Message{Role: string(m.Role), Content: m.Content})
	}
	candidate = append(candidate, llm.Message{Role: llm.RoleUser, Content: msg})

	liveCtx, cancel := context.WithTimeout(ctx, u.cfg.LiveTimeout)
	defer cancel()

	startTime := time.Now()
	reply, err := u.cfg.Provider.GenerateChatResponse(liveCtx, u.cfg.SystemPrompt, candidate)
	reply = strings.TrimSpace(reply)
	if err != nil || reply == "" {
		if err == nil {
			err = llm.ErrEmptyResponse
		}
		u.cfg.Log.WithFields(logrus.Fields{
			"user_id":  userID,
			"provider": u.cfg.Provider.Name(),
			"took":     time.Since(startTime).String(),
		}).WithError(err).Warn("live reply unavailable, using fallback")
		return "", ""
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"user_id":  userID,
		"provider": u.cfg.Provider.Name(),
		"took":     time.Since(startTime).String(),
	}).Debug("live reply generated")
	return reply, entity.ReplySourceLive
}

func (u *careerUsecase) GetChatHistory(ctx context.Context, userID string) ([]entity.ChatHistoryItem, error) {
	if _, err := u.findUser(userID); err != nil {
		return nil, err
	}
	rows, err := u.loadHistory(userID)
	if err != nil {
		return nil, err
	}
	return mapper.ToChatHistory(rows), nil
}

func (u *careerUsecase) ResetChat(ctx context.Context, userID string) ([]entity.ChatHistoryItem, error) {
	if _, err := u.findUser(userID); err != nil {
		return nil, err
	}
	seed := []internalEntity.ChatMessage{seedMessage(userID, ResetMessage)}
	if err := u.cfg.Chats.Replace(u.cfg.DB, userID, seed); err != nil {
		return nil, fmt.Errorf("failed to reset chat: %w", err)
	}
	return mapper.ToChatHistory(seed), nil
}

// loadHistory returns the stored history, seeding the greeting when it is empty.
func (u *careerUsecase) loadHistory(userID string) ([]internalEntity.ChatMessage, error) {
	rows, err := u.cfg.Chats.FindByUserID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}
	if len(rows) > 0 {
		return rows, nil
	}

	seed := []internalEntity.ChatMessage{seedMessage(userID, GreetingMessage)}
	if err := u.cfg.Chats.Append(u.cfg.DB, seed); err != nil {
		return nil, fmt.Errorf("failed to seed chat history: %w", err)
	}
	return seed, nil
}

func (u *careerUsecase) findUser(userID string) (*internalEntity.User, error) {
	user, err := u.cfg.Users.FindByID(u.cfg.DB, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func seedMessage(userID, content string) internalEntity.ChatMessage {
	return internalEntity.ChatMessage{
		UserID:   userID,
		Position: 0,
		Role:     string(entity.RoleAssistant),
		Content:  content,
		Source:   string(entity.ReplySourceSeed),
	}
}
