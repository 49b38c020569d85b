package dto

// CreateNotificationRequest corpo de criação manual de notificação.
// user_id nulo/ausente cria um broadcast.
type CreateNotificationRequest struct {
	UserID  *int64 `json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// NotificationResponse uma notificação.
type NotificationResponse struct {
	ID        int64  `json:"id"`
	UserID    *int64 `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
