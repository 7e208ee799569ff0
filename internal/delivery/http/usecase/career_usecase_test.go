package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	internalEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/Vickyvkz7/SIH2025/internal/pkg/llm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type careerFixture struct {
	usecase CareerUsecase
	users   *fakeUserRepo
	chats   *fakeChatRepo
	quizzes *fakeQuizRepo
}

func newCareerFixture(provider llm.ChatProvider) *careerFixture {
	f := &careerFixture{
		users:   newFakeUserRepo(internalEntity.User{ID: testUserID, Email: "student@example.com"}),
		chats:   newFakeChatRepo(),
		quizzes: &fakeQuizRepo{},
	}
	f.usecase = NewCareerUsecase(CareerConfig{
		Log:      quietLogger(),
		Provider: provider,
		Users:    f.users,
		Chats:    f.chats,
		Quizzes:  f.quizzes,
	})
	return f
}

func TestChat_FallbackWhenLiveFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("quota exceeded")})
	f := newCareerFixture(mock)
	ctx := context.Background()

	resp, err := f.usecase.Chat(ctx, testUserID, "I love NEET biology prep")
	require.NoError(t, err)

	assert.Equal(t, entity.ReplySourceFallback, resp.Source)
	assert.Equal(t, fallbackCatalog[0]+"\n\n"+FallbackDisclaimer, resp.Reply)
	assert.Equal(t, 1, mock.CallCount())

	history, err := f.usecase.GetChatHistory(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, history, 3) // greeting + exchange
	assert.Equal(t, GreetingMessage, history[0].Content)
	assert.Equal(t, entity.RoleUser, history[1].Role)
	assert.Equal(t, "I love NEET biology prep", history[1].Content)
	assert.Equal(t, entity.RoleAssistant, history[2].Role)
	assert.Equal(t, resp.Reply, history[2].Content)
}

func TestChat_NoProviderRotatesByHistoryLength(t *testing.T) {
	f := newCareerFixture(nil)
	ctx := context.Background()

	first, err := f.usecase.Chat(ctx, testUserID, "hello there")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Reply, fallbackCatalog[1])) // greeting only

	second, err := f.usecase.Chat(ctx, testUserID, "hello there")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(second.Reply, fallbackCatalog[3]))

	rows, err := f.chats.FindByUserID(nil, testUserID)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Equal(t, i, row.Position)
	}
}

func TestChat_LiveReplyUsed(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Reply: "  Study hard.  "})
	f := newCareerFixture(mock)

	resp, err := f.usecase.Chat(context.Background(), testUserID, "What should I do?")
	require.NoError(t, err)
	assert.Equal(t, entity.ReplySourceLive, resp.Source)
	assert.Equal(t, "Study hard.", resp.Reply)

	require.Len(t, mock.Calls, 1)
	call := mock.Calls[0]
	assert.Equal(t, DefaultSystemPrompt, call.System)
	require.Len(t, call.History, 2)
	assert.Equal(t, llm.RoleAssistant, call.History[0].Role)
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Content: "What should I do?"}, call.History[1])
}

func TestChat_EmptyLiveReplyFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Reply: "   "})
	f := newCareerFixture(mock)

	resp, err := f.usecase.Chat(context.Background(), testUserID, "scholarship info")
	require.NoError(t, err)
	assert.Equal(t, entity.ReplySourceFallback, resp.Source)
	assert.True(t, strings.HasPrefix(resp.Reply, fallbackCatalog[9]))
}

func TestChat_BlankMessageChangesNothing(t *testing.T) {
	mock := llm.NewMockProvider()
	f := newCareerFixture(mock)

	_, err := f.usecase.Chat(context.Background(), testUserID, "   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Equal(t, 0, mock.CallCount())

	rows, err := f.chats.FindByUserID(nil, testUserID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestChat_UnknownUser(t *testing.T) {
	f := newCareerFixture(nil)
	_, err := f.usecase.Chat(context.Background(), "nobody", "hi")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetChat_LeavesSingleSeed(t *testing.T) {
	f := newCareerFixture(nil)
	ctx := context.Background()

	_, err := f.usecase.Chat(ctx, testUserID, "hello")
	require.NoError(t, err)

	items, err := f.usecase.ResetChat(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ResetMessage, items[0].Content)

	history, err := f.usecase.GetChatHistory(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.RoleAssistant, history[0].Role)
	assert.Equal(t, ResetMessage, history[0].Content)
}

func TestSubmitQuiz_StoresRecommendation(t *testing.T) {
	f := newCareerFixture(nil)
	ctx := context.Background()

	result, err := f.usecase.SubmitQuiz(ctx, testUserID, repeat("I enjoy drawing", QuizAnswerCount))
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryArts, result.RecommendedField)
	assert.Equal(t, 20, result.Scores[entity.CategoryArts])
	assert.Len(t, result.Ranking, len(entity.Categories))

	user, err := f.users.FindByID(nil, testUserID)
	require.NoError(t, err)
	require.NotNil(t, user.RecommendedField)
	assert.Equal(t, string(entity.CategoryArts), *user.RecommendedField)

	latest, err := f.usecase.GetLatestQuiz(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, result.RecommendedField, latest.RecommendedField)
	assert.Equal(t, result.Scores, latest.Scores)
}

func TestSubmitQuiz_WrongCount(t *testing.T) {
	f := newCareerFixture(nil)
	_, err := f.usecase.SubmitQuiz(context.Background(), testUserID, repeat("math", 3))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, f.quizzes.results)
}

func TestGetLatestQuiz_NotTaken(t *testing.T) {
	f := newCareerFixture(nil)
	_, err := f.usecase.GetLatestQuiz(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrQuizNotTaken)
}
