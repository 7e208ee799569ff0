package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_FIFO(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(
		MockResponse{Reply: "first"},
		MockResponse{Err: boom},
	)

	history := []Message{{Role: RoleUser, Content: "hi"}}

	reply, err := m.GenerateChatResponse(context.Background(), "sys", history)
	require.NoError(t, err)
	assert.Equal(t, "first", reply)

	_, err = m.GenerateChatResponse(context.Background(), "sys", history)
	assert.ErrorIs(t, err, boom)

	_, err = m.GenerateChatResponse(context.Background(), "sys", history)
	assert.ErrorIs(t, err, ErrMockExhausted)

	assert.Equal(t, 3, m.CallCount())
	assert.Equal(t, "sys", m.Calls[0].System)
}

func TestMockProvider_RecordsCopyOfHistory(t *testing.T) {
	m := NewMockProvider(MockResponse{Reply: "ok"})
	history := []Message{{Role: RoleUser, Content: "original"}}

	_, err := m.GenerateChatResponse(context.Background(), "", history)
	require.NoError(t, err)

	history[0].Content = "changed"
	assert.Equal(t, "original", m.Calls[0].History[0].Content)
}
