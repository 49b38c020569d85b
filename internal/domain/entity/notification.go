package entity

import "time"

// Tipos (severidade) de notificação.
const (
	NotificationTypeInfo    = "info"
	NotificationTypeWarning = "warning"
	NotificationTypeDanger  = "danger"
)

// Notification representa uma notificação do sistema.
// UserID nil indica broadcast (visível para todos os usuários).
type Notification struct {
	ID        int64
	UserID    *int64
	Title     string
	Message   string
	Type      string // info, warning, danger
	IsRead    bool
	CreatedAt time.Time
}

// IsBroadcast indica se a notificação é de sistema (sem destinatário).
func (n *Notification) IsBroadcast() bool {
	return n.UserID == nil
}
