package model

import (
	"time"
)

// Deposit represents the database model for recorded deposits. Rows are
// insert-only; corrections happen through compensating records.
type Deposit struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Reference    string    `gorm:"uniqueIndex;not null;size:20"`
	UserID       uint64    `gorm:"not null;index:idx_deposits_user_created,priority:1;index:idx_deposits_dedup,priority:1"`
	MaterialID   uint64    `gorm:"not null;index;index:idx_deposits_dedup,priority:2"`
	MachineID    uint64    `gorm:"not null;index;index:idx_deposits_dedup,priority:3"`
	WeightGrams  int64     `gorm:"not null;index:idx_deposits_dedup,priority:4"`
	PointsEarned int64     `gorm:"not null"` // Points in hundredths
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index:idx_deposits_user_created,priority:2;index:idx_deposits_dedup,priority:5"`

	Material Material `gorm:"foreignKey:MaterialID;references:ID"`
	Machine  Machine  `gorm:"foreignKey:MachineID;references:ID"`
}

// TableName specifies the table name for Deposit
func (Deposit) TableName() string {
	return "deposits"
}
