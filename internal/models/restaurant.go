package models

import "time"

// Restaurant name is globally unique (case-sensitive exact match).
type Restaurant struct {
	ID           string    `gorm:"type:varchar(24);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Address      string    `gorm:"type:varchar(200);not null" json:"address"`
	Phone        string    `gorm:"type:varchar(20);not null" json:"phone"`
	OpeningHours string    `gorm:"type:varchar(100);not null" json:"opening_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
