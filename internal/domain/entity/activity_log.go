package entity

import "time"

// ActivityLog representa um evento de auditoria (quem fez o quê).
type ActivityLog struct {
	ID        int64
	UserID    int64
	Action    string // ex.: CLIENT_ACCOUNT_CREATED, PRODUCT_STOCK_CONSUMED
	Details   string
	CreatedAt time.Time
}
