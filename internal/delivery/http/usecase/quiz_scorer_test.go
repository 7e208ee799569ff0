package usecase

import (
	"testing"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(answer string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = answer
	}
	return out
}

func TestScoreQuiz_NoMatchesDefaultsToFirstCategory(t *testing.T) {
	scores, best, err := ScoreQuiz(repeat("nothing relevant here", QuizAnswerCount))
	require.NoError(t, err)

	assert.Equal(t, entity.CategoryEngineering, best)
	assert.Len(t, scores, len(entity.Categories))
	for _, c := range entity.Categories {
		assert.Equal(t, 0, scores[c], c)
	}
}

func TestScoreQuiz_OneAnswerRaisesSeveralCategories(t *testing.T) {
	answers := repeat("", QuizAnswerCount)
	answers[0] = "I like Math and helping people"

	scores, best, err := ScoreQuiz(answers)
	require.NoError(t, err)

	assert.Equal(t, 2, scores[entity.CategoryEngineering])
	assert.Equal(t, 2, scores[entity.CategoryMedicine])
	assert.Equal(t, 0, scores[entity.CategoryArts])
	assert.Equal(t, entity.CategoryEngineering, best)
}

func TestScoreQuiz_TriggerCountsOncePerAnswer(t *testing.T) {
	scores, _, err := ScoreQuiz(repeat("math math coding problem", QuizAnswerCount))
	require.NoError(t, err)
	assert.Equal(t, 20, scores[entity.CategoryEngineering])
}

func TestScoreQuiz_TieGoesToDeclarationOrder(t *testing.T) {
	answers := repeat("", QuizAnswerCount)
	answers[0] = "teaching"
	answers[1] = "drawing"

	scores, best, err := ScoreQuiz(answers)
	require.NoError(t, err)
	assert.Equal(t, 2, scores[entity.CategoryArts])
	assert.Equal(t, 2, scores[entity.CategoryEducation])
	assert.Equal(t, entity.CategoryArts, best)
}

func TestScoreQuiz_HighestWins(t *testing.T) {
	answers := repeat("research papers", QuizAnswerCount)
	answers[0] = "business"

	scores, best, err := ScoreQuiz(answers)
	require.NoError(t, err)
	assert.Equal(t, 18, scores[entity.CategoryEducation])
	assert.Equal(t, 2, scores[entity.CategoryBusiness])
	assert.Equal(t, entity.CategoryEducation, best)
}

func TestScoreQuiz_Deterministic(t *testing.T) {
	answers := []string{"coding", "health", "design", "money", "reading", "", "x", "math", "BIOLOGY", "Creative"}

	s1, b1, err := ScoreQuiz(answers)
	require.NoError(t, err)
	s2, b2, err := ScoreQuiz(answers)
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, b1, b2)
}

func TestScoreQuiz_WrongAnswerCount(t *testing.T) {
	for _, n := range []int{0, 9, 11} {
		_, _, err := ScoreQuiz(repeat("math", n))
		assert.ErrorIs(t, err, ErrInvalidInput, n)
	}
}

func TestRankScores_DeclarationOrder(t *testing.T) {
	scores := entity.CategoryScore{entity.CategoryBusiness: 4}
	items := RankScores(scores)

	require.Len(t, items, len(entity.Categories))
	for i, c := range entity.Categories {
		assert.Equal(t, c, items[i].Category)
	}
	assert.Equal(t, 4, items[3].Score)
	assert.Equal(t, 0, items[0].Score)
}
