package mapper

import (
	"time"

	httpEntity "github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	dbEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
)

// ToConversation - Convert stored rows to the role/content sequence, keeping order
func ToConversation(rows []dbEntity.ChatMessage) []httpEntity.ConversationMessage {
	history := make([]httpEntity.ConversationMessage, 0, len(rows))
	for _, row := range rows {
		history = append(history, httpEntity.ConversationMessage{
			Role:    httpEntity.Role(row.Role),
			Content: row.Content,
		})
	}
	return history
}

func ToChatHistory(rows []dbEntity.ChatMessage) []httpEntity.ChatHistoryItem {
	items := make([]httpEntity.ChatHistoryItem, 0, len(rows))
	for _, row := range rows {
		createdAt := ""
		if !row.CreatedAt.IsZero() {
			createdAt = row.CreatedAt.Format(time.RFC3339)
		}
		items = append(items, httpEntity.ChatHistoryItem{
			Role:      httpEntity.Role(row.Role),
			Content:   row.Content,
			CreatedAt: createdAt,
		})
	}
	return items
}
