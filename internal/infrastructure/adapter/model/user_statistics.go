package model

import (
	"time"
)

// UserStatistics represents the database model for per-user cumulative
// totals. One row per user, updated atomically alongside each deposit.
type UserStatistics struct {
	UserID           uint64    `gorm:"primaryKey;not null"`
	TotalWeightGrams int64     `gorm:"not null;default:0"`
	TotalPoints      int64     `gorm:"not null;default:0"` // Points in hundredths
	DepositCount     uint64    `gorm:"not null;default:0"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserStatistics
func (UserStatistics) TableName() string {
	return "user_statistics"
}
