package domain

type Customer struct {
	ID                  string   `json:"id"`
	DisplayName         string   `json:"display_name"`
	Email               string   `json:"email"`
	TelegramChatID      *int64   `json:"telegram_chat_id"`
	ActiveMembershipIDs []string `json:"active_membership_ids"`
}
