package storage

import "time"

// TicketModel is the GORM model for tickets table
type TicketModel struct {
	BlockReason  string `gorm:"not null;default:''"`
	CreatedAt    time.Time
	ID           int        `gorm:"primaryKey;autoIncrement:false"`
	LastActiveAt *time.Time `gorm:"default:null;index:idx_last_active_at"`
	StartedAt    time.Time  `gorm:"not null"`
	Status       string     `gorm:"not null;default:'open';check:status IN ('open','blocked')"`
	StopCount    int        `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string { return "tickets" }
