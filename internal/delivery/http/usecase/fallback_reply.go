package usecase

import (
	"strings"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
)

const FallbackDisclaimer = "⚠️ (AI currently unavailable for live replies.)"

var fallbackCatalog = [...]string{
	"🎓 NEET / Medical: Focus on NCERT Biology & Chemistry. Practice previous years' papers and timed mocks.",
	"📐 JEE / Engineering: Strengthen Physics fundamentals, practice problem solving and take regular mock tests.",
	"📚 UPSC / Civil Services: Start early with NCERTs, read daily editorials, and practice answer-writing.",
	"⚖️ Law (CLAT): Work on legal reasoning, logical ability, and comprehension. Take mock tests and read case summaries.",
	"💼 Commerce / CA / CS: Build basics in Accountancy, Business Studies and practice numerical problems.",
	"🎨 Arts / Design: Build a strong portfolio, practice creative projects, and consider design entrance prep.",
	"💻 IT / CS: Start learning Python, data structures, and small projects (web apps, scripts) to build a portfolio.",
	"🏛️ Government exams (JKPSC etc.): Track official notifications, focus on basics and current affairs, and practice mock papers.",
	"💡 Career tip: Improve soft skills (communication, teamwork) — employers value these highly.",
	"🎯 Scholarships: Look for schemes like PMSSS (for J&K students) and state scholarships; they can reduce costs significantly.",
}

type keywordRule struct {
	keywords []string
	index    int
}

// keywordRules are checked in order and the first hit wins. Index 8 has no
// rule and is only reachable through rotation.
var keywordRules = []keywordRule{
	{keywords: []string{"neet", "medical", "biology", "mbbs"}, index: 0},
	{keywords: []string{"jee", "engineering", "physics", "math"}, index: 1},
	{keywords: []string{"upsc", "civil services", "ias", "ias/ips"}, index: 2},
	{keywords: []string{"clat", "law", "llb"}, index: 3},
	{keywords: []string{"ca", "commerce", "cs", "account"}, index: 4},
	{keywords: []string{"arts", "design", "painting", "fine"}, index: 5},
	{keywords: []string{"python", "coding", "data science", "machine", "ai", "web"}, index: 6},
	{keywords: []string{"jkpsc", "state", "psc", "government exam"}, index: 7},
	{keywords: []string{"scholarship", "pmsss", "financial", "grant"}, index: 9},
}

// FallbackIndex selects a catalog entry. historyLen is the number of messages
// before the new exchange is appended.
func FallbackIndex(message string, historyLen int) (int, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return 0, ErrEmptyMessage
	}

	low := strings.ToLower(msg)
	for _, rule := range keywordRules {
		if containsAny(low, rule.keywords) {
			return rule.index, nil
		}
	}

	if historyLen < 0 {
		historyLen = 0
	}
	return historyLen % len(fallbackCatalog), nil
}

// SelectFallbackReply returns the canned reply plus the disclaimer suffix.
func SelectFallbackReply(message string, history []entity.ConversationMessage) (string, error) {
	idx, err := FallbackIndex(message, len(history))
	if err != nil {
		return "", err
	}
	return fallbackCatalog[idx] + "\n\n" + FallbackDisclaimer, nil
}

// AppendExchange returns a new slice with the user message then the reply;
// history itself is not modified.
func AppendExchange(history []entity.ConversationMessage, message, reply string) []entity.ConversationMessage {
	out := make([]entity.ConversationMessage, 0, len(history)+2)
	out = append(out, history...)
	out = append(out,
		entity.ConversationMessage{Role: entity.RoleUser, Content: message},
		entity.ConversationMessage{Role: entity.RoleAssistant, Content: reply},
	)
	return out
}
