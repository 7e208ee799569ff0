package mapper

import (
	"testing"
	"time"

	httpEntity "github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	dbEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCollege_Courses(t *testing.T) {
	c := ToCollege(dbEntity.College{ID: 1, Name: "A", Courses: `["BA","BSc"]`})
	assert.Equal(t, []string{"BA", "BSc"}, c.Courses)

	c = ToCollege(dbEntity.College{ID: 2, Name: "B", Courses: `not json`})
	assert.Nil(t, c.Courses)
}

func TestToConversationKeepsOrder(t *testing.T) {
	rows := []dbEntity.ChatMessage{
		{Position: 0, Role: "assistant", Content: "hi"},
		{Position: 1, Role: "user", Content: "hello", CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
	}

	history := ToConversation(rows)
	require.Len(t, history, 2)
	assert.Equal(t, httpEntity.RoleAssistant, history[0].Role)
	assert.Equal(t, httpEntity.RoleUser, history[1].Role)

	items := ToChatHistory(rows)
	assert.Equal(t, "", items[0].CreatedAt)
	assert.Equal(t, "2025-03-01T09:00:00Z", items[1].CreatedAt)
}

func TestToProfile(t *testing.T) {
	field := "Arts/Design"
	user := &dbEntity.User{ID: "u1", Email: "a@b.com", RecommendedField: &field}
	applied := []dbEntity.CollegeApplication{{CollegeID: 3}, {CollegeID: 1}}

	p := ToProfile(user, applied)
	assert.Equal(t, "Arts/Design", p.RecommendedField)
	assert.Equal(t, []uint{3, 1}, p.AppliedColleges)

	p = ToProfile(&dbEntity.User{ID: "u2"}, nil)
	assert.Empty(t, p.RecommendedField)
	assert.NotNil(t, p.AppliedColleges)
}
