package models

import "time"

// Menu is a single menu item referencing its restaurant. The reference
// is non-owning: deleting a restaurant leaves its menus in place.
// (restaurant_id, name) is unique; the same name may repeat across
// different restaurants.
type Menu struct {
	ID           string    `gorm:"type:varchar(24);primaryKey" json:"id"`
	RestaurantID string    `gorm:"type:varchar(24);not null;index;uniqueIndex:idx_menu_restaurant_name" json:"restaurantId"`
	Name         string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_menu_restaurant_name" json:"name"`
	Description  string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	Price        float64   `gorm:"not null" json:"price"`
	Category     string    `gorm:"type:varchar(50)" json:"category,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
