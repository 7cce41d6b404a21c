package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 { return &f }

const validRestaurantID = "507f1f77bcf86cd799439011"

func TestValidateMenuCreation(t *testing.T) {
	valid := MenuCreationInput{
		Name:         "Salade Niçoise",
		Description:  ptr("Fresh tuna, olives and green beans"),
		Price:        fptr(12.5),
		RestaurantID: validRestaurantID,
		Category:     ptr("Salads"),
	}

	t.Run("valid input passes", func(t *testing.T) {
		in := valid
		assert.NoError(t, ValidateMenuCreation(&in))
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		in := MenuCreationInput{
			Name:         "Plat du jour",
			Price:        fptr(9.9),
			RestaurantID: validRestaurantID,
		}
		assert.NoError(t, ValidateMenuCreation(&in))
	})

	tests := []struct {
		name   string
		mutate func(*MenuCreationInput)
		want   string
	}{
		{
			"missing name",
			func(in *MenuCreationInput) { in.Name = "" },
			"Name, price and restaurantId are required",
		},
		{
			"missing price",
			func(in *MenuCreationInput) { in.Price = nil },
			"Name, price and restaurantId are required",
		},
		{
			"whitespace name",
			func(in *MenuCreationInput) { in.Name = "   " },
			"Name and restaurantId cannot be empty or whitespace",
		},
		{
			"whitespace description",
			func(in *MenuCreationInput) { in.Description = ptr("   ") },
			"Description cannot be empty or whitespace",
		},
		{
			"zero price",
			func(in *MenuCreationInput) { in.Price = fptr(0) },
			"Price must be a positive number",
		},
		{
			"negative price",
			func(in *MenuCreationInput) { in.Price = fptr(-3) },
			"Price must be a positive number",
		},
		{
			"short description",
			func(in *MenuCreationInput) { in.Description = ptr("abc") },
			"Description must be between 5 and 500 characters long",
		},
		{
			"long category",
			func(in *MenuCreationInput) { in.Category = ptr(strings.Repeat("x", 51)) },
			"Category must be between 2 and 50 characters long",
		},
		{
			"malformed restaurant id",
			func(in *MenuCreationInput) { in.RestaurantID = "not-hex" },
			"Restaurant ID must be a valid identifier",
		},
		{
			"restaurant id too short",
			func(in *MenuCreationInput) { in.RestaurantID = "507f1f77bcf86cd7994390" },
			"Restaurant ID must be a valid identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			assertBadRequest(t, ValidateMenuCreation(&in), tt.want)
		})
	}
}

func TestValidateMenuUpdate(t *testing.T) {
	t.Run("single field passes", func(t *testing.T) {
		assert.NoError(t, ValidateMenuUpdate(&MenuUpdateInput{Name: ptr("Tartare")}))
		assert.NoError(t, ValidateMenuUpdate(&MenuUpdateInput{Price: fptr(15)}))
		assert.NoError(t, ValidateMenuUpdate(&MenuUpdateInput{RestaurantID: ptr(validRestaurantID)}))
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		assertBadRequest(t, ValidateMenuUpdate(&MenuUpdateInput{}),
			"At least one field (name, description, price, restaurantId, category) must be provided for update")
	})

	t.Run("price alone satisfies presence", func(t *testing.T) {
		assert.NoError(t, ValidateMenuUpdate(&MenuUpdateInput{Price: fptr(1)}))
	})

	t.Run("negative price rejected", func(t *testing.T) {
		assertBadRequest(t, ValidateMenuUpdate(&MenuUpdateInput{Price: fptr(-1)}),
			"Price must be a positive number")
	})

	t.Run("malformed restaurant id", func(t *testing.T) {
		assertBadRequest(t, ValidateMenuUpdate(&MenuUpdateInput{RestaurantID: ptr("zzz")}),
			"Restaurant ID must be a valid identifier")
	})

	t.Run("short name", func(t *testing.T) {
		assertBadRequest(t, ValidateMenuUpdate(&MenuUpdateInput{Name: ptr("A")}),
			"Name must be between 2 and 100 characters long")
	})
}
