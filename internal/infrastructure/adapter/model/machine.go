package model

import (
	"time"
)

// Machine represents the database model for reverse vending machines
type Machine struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	MachineID string    `gorm:"uniqueIndex;not null;size:50"`
	Location  string    `gorm:"not null;size:255"`
	Status    string    `gorm:"not null;size:20;default:'active'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Machine
func (Machine) TableName() string {
	return "machines"
}
