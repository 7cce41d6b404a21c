package validation

import (
	"regexp"
	"strings"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
)

// phoneRegex is E.164-like: optional leading +, a 1-9 digit, then 1-14
// more digits.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// RestaurantCreationInput is the POST /api/restaurants payload.
type RestaurantCreationInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"opening_hours"`
}

// RestaurantUpdateInput is the PUT /api/restaurants/:id payload.
type RestaurantUpdateInput struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	OpeningHours *string `json:"opening_hours"`
}

func trimmedLen(s string) int {
	return len(strings.TrimSpace(s))
}

// ValidateRestaurantCreation requires every field and enforces the
// length and format rules.
func ValidateRestaurantCreation(in *RestaurantCreationInput) error {
	if in.Name == "" || in.Address == "" || in.Phone == "" || in.OpeningHours == "" {
		return apperr.BadRequest("All fields (name, address, phone, opening_hours) are required")
	}
	if blank(in.Name) || blank(in.Address) || blank(in.Phone) || blank(in.OpeningHours) {
		return apperr.BadRequest("Fields cannot be empty or whitespace")
	}
	if n := trimmedLen(in.Name); n < 2 || n > 100 {
		return apperr.BadRequest("Name must be between 2 and 100 characters long")
	}
	if n := trimmedLen(in.Address); n < 5 || n > 200 {
		return apperr.BadRequest("Address must be between 5 and 200 characters long")
	}
	if n := trimmedLen(in.OpeningHours); n < 5 || n > 100 {
		return apperr.BadRequest("Opening hours must be between 5 and 100 characters long")
	}
	if !phoneRegex.MatchString(in.Phone) {
		return apperr.BadRequest("Invalid phone number format")
	}
	return nil
}

// ValidateRestaurantUpdate requires at least one recognized field and
// checks only the fields that are present.
func ValidateRestaurantUpdate(in *RestaurantUpdateInput) error {
	provided := func(s *string) bool { return s != nil && *s != "" }

	if !provided(in.Name) && !provided(in.Address) && !provided(in.Phone) && !provided(in.OpeningHours) {
		return apperr.BadRequest("At least one field (name, address, phone, opening_hours) must be provided for update")
	}

	if in.Name != nil {
		if blank(*in.Name) {
			return apperr.BadRequest("Name cannot be empty or whitespace")
		}
		if n := trimmedLen(*in.Name); n < 2 || n > 100 {
			return apperr.BadRequest("Name must be between 2 and 100 characters long")
		}
	}
	if in.Address != nil {
		if blank(*in.Address) {
			return apperr.BadRequest("Address cannot be empty or whitespace")
		}
		if n := trimmedLen(*in.Address); n < 5 || n > 200 {
			return apperr.BadRequest("Address must be between 5 and 200 characters long")
		}
	}
	if in.Phone != nil {
		if blank(*in.Phone) {
			return apperr.BadRequest("Phone cannot be empty or whitespace")
		}
		if !phoneRegex.MatchString(*in.Phone) {
			return apperr.BadRequest("Invalid phone number format")
		}
	}
	if in.OpeningHours != nil {
		if blank(*in.OpeningHours) {
			return apperr.BadRequest("Opening hours cannot be empty or whitespace")
		}
		if n := trimmedLen(*in.OpeningHours); n < 5 || n > 100 {
			return apperr.BadRequest("Opening hours must be between 5 and 100 characters long")
		}
	}

	return nil
}
