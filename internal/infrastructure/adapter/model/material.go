package model

import (
	"time"
)

// Material represents the database model for accepted recyclable materials
type Material struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"uniqueIndex;not null;size:100"`
	PointsPerKg int64     `gorm:"not null"` // Rate in hundredths of a point
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Material
func (Material) TableName() string {
	return "materials"
}
