package usecase

import (
	"fmt"
	"strings"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
)

const (
	QuizAnswerCount   = 10
	categoryIncrement = 2
)

// categoryTriggers are matched by substring containment on the lower-cased answer.
var categoryTriggers = map[entity.Category][]string{
	entity.CategoryEngineering: {"math", "coding", "problem"},
	entity.CategoryMedicine:    {"biology", "helping", "health"},
	entity.CategoryArts:        {"drawing", "creative", "design"},
	entity.CategoryBusiness:    {"leadership", "business", "money"},
	entity.CategoryEducation:   {"reading", "teaching", "research"},
}

// ScoreQuiz scores exactly QuizAnswerCount answers. One answer may raise
// several categories at once.
func ScoreQuiz(answers []string) (entity.CategoryScore, entity.Category, error) {
	if len(answers) != QuizAnswerCount {
		return nil, "", fmt.Errorf("%w: expected %d answers, got %d", ErrInvalidInput, QuizAnswerCount, len(answers))
	}

	scores := make(entity.CategoryScore, len(entity.Categories))
	for _, category := range entity.Categories {
		scores[category] = 0
	}

	for _, answer := range answers {
		a := strings.ToLower(answer)
		for _, category := range entity.Categories {
			if containsAny(a, categoryTriggers[category]) {
				scores[category] += categoryIncrement
			}
		}
	}

	return scores, BestCategory(scores), nil
}

// BestCategory picks the highest score; ties go to the category declared first.
func BestCategory(scores entity.CategoryScore) entity.Category {
	best := entity.Categories[0]
	for _, category := range entity.Categories[1:] {
		if scores[category] > scores[best] {
			best = category
		}
	}
	return best
}

// RankScores lists scores in declaration order.
func RankScores(scores entity.CategoryScore) []entity.CategoryScoreItem {
	items := make([]entity.CategoryScoreItem, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		items = append(items, entity.CategoryScoreItem{Category: category, Score: scores[category]})
	}
	return items
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
