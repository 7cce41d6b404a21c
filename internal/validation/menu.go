package validation

import (
	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/utils"
)

// MenuCreationInput is the POST /api/menus payload. Description and
// category are optional.
type MenuCreationInput struct {
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	RestaurantID string   `json:"restaurantId"`
	Category     *string  `json:"category"`
}

// MenuUpdateInput is the PUT /api/menus/:id payload.
type MenuUpdateInput struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price"`
	RestaurantID *string  `json:"restaurantId"`
	Category     *string  `json:"category"`
}

// ValidateMenuCreation requires name, price and restaurantId. Unlike
// the user and restaurant validators, a wholly absent required field
// and an empty one share the single "required" message; the separate
// whitespace message only fires for whitespace-padded values.
func ValidateMenuCreation(in *MenuCreationInput) error {
	if in.Name == "" || in.Price == nil || in.RestaurantID == "" {
		return apperr.BadRequest("Name, price and restaurantId are required")
	}
	if blank(in.Name) || blank(in.RestaurantID) {
		return apperr.BadRequest("Name and restaurantId cannot be empty or whitespace")
	}

	if in.Description != nil && blank(*in.Description) {
		return apperr.BadRequest("Description cannot be empty or whitespace")
	}
	if in.Category != nil && blank(*in.Category) {
		return apperr.BadRequest("Category cannot be empty or whitespace")
	}

	if *in.Price <= 0 {
		return apperr.BadRequest("Price must be a positive number")
	}

	if n := trimmedLen(in.Name); n < 2 || n > 100 {
		return apperr.BadRequest("Name must be between 2 and 100 characters long")
	}
	if in.Description != nil {
		if n := trimmedLen(*in.Description); n < 5 || n > 500 {
			return apperr.BadRequest("Description must be between 5 and 500 characters long")
		}
	}
	if in.Category != nil {
		if n := trimmedLen(*in.Category); n < 2 || n > 50 {
			return apperr.BadRequest("Category must be between 2 and 50 characters long")
		}
	}

	if !utils.IsValidID(in.RestaurantID) {
		return apperr.BadRequest("Restaurant ID must be a valid identifier")
	}

	return nil
}

// ValidateMenuUpdate requires at least one recognized field and checks
// only the fields that are present.
func ValidateMenuUpdate(in *MenuUpdateInput) error {
	provided := func(s *string) bool { return s != nil && *s != "" }

	if !provided(in.Name) && !provided(in.Description) && in.Price == nil &&
		!provided(in.RestaurantID) && !provided(in.Category) {
		return apperr.BadRequest("At least one field (name, description, price, restaurantId, category) must be provided for update")
	}

	if in.Name != nil {
		if blank(*in.Name) {
			return apperr.BadRequest("Name cannot be empty or whitespace")
		}
		if n := trimmedLen(*in.Name); n < 2 || n > 100 {
			return apperr.BadRequest("Name must be between 2 and 100 characters long")
		}
	}
	if in.Description != nil {
		if blank(*in.Description) {
			return apperr.BadRequest("Description cannot be empty or whitespace")
		}
		if n := trimmedLen(*in.Description); n < 5 || n > 500 {
			return apperr.BadRequest("Description must be between 5 and 500 characters long")
		}
	}
	if in.Price != nil && *in.Price <= 0 {
		return apperr.BadRequest("Price must be a positive number")
	}
	if in.Category != nil {
		if blank(*in.Category) {
			return apperr.BadRequest("Category cannot be empty or whitespace")
		}
		if n := trimmedLen(*in.Category); n < 2 || n > 50 {
			return apperr.BadRequest("Category must be between 2 and 50 characters long")
		}
	}
	if in.RestaurantID != nil {
		if blank(*in.RestaurantID) {
			return apperr.BadRequest("Restaurant ID cannot be empty or whitespace")
		}
		if !utils.IsValidID(*in.RestaurantID) {
			return apperr.BadRequest("Restaurant ID must be a valid identifier")
		}
	}

	return nil
}
