package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dudhiya-app/internal/utils"
)

func validItem() CartItem {
	return CartItem{
		ID:        "item-1",
		ProductID: "prod-1",
		Name:      "Full Cream Milk 1L",
		Quantity:  2,
		UnitPrice: 66,
	}
}

func TestValidateItem(t *testing.T) {
	t.Run("Valid item", func(t *testing.T) {
		assert.NoError(t, ValidateItem(validItem()))
	})

	t.Run("Empty id", func(t *testing.T) {
		item := validItem()
		item.ID = ""
		assert.ErrorIs(t, ValidateItem(item), ErrInvalidItem)
	})

	t.Run("Empty name", func(t *testing.T) {
		item := validItem()
		item.Name = ""
		assert.ErrorIs(t, ValidateItem(item), ErrInvalidItem)
	})

	t.Run("Zero price", func(t *testing.T) {
		item := validItem()
		item.UnitPrice = 0
		assert.ErrorIs(t, ValidateItem(item), ErrInvalidItem)
	})

	t.Run("Zero quantity", func(t *testing.T) {
		item := validItem()
		item.Quantity = 0
		assert.ErrorIs(t, ValidateItem(item), ErrInvalidItem)
	})
}

func TestFindItem(t *testing.T) {
	items := []CartItem{
		{ID: "a", Name: "Curd 500g"},
		{ID: "b", Name: "Paneer 200g"},
	}

	t.Run("Found", func(t *testing.T) {
		item, ok := FindItem(items, "b")
		assert.True(t, ok)
		assert.Equal(t, "Paneer 200g", item.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		item, ok := FindItem(items, "c")
		assert.False(t, ok)
		assert.Nil(t, item)
	})
}

func TestSameVariant(t *testing.T) {
	t.Run("Nil size matches nil size", func(t *testing.T) {
		item := CartItem{ProductID: "p1"}
		assert.True(t, item.SameVariant("p1", nil))
	})

	t.Run("Nil size does not match a size", func(t *testing.T) {
		item := CartItem{ProductID: "p1"}
		assert.False(t, item.SameVariant("p1", utils.StrPtr("s1")))
	})

	t.Run("Different sizes differ", func(t *testing.T) {
		item := CartItem{ProductID: "p1", SizeID: utils.StrPtr("s1")}
		assert.False(t, item.SameVariant("p1", utils.StrPtr("s2")))
		assert.True(t, item.SameVariant("p1", utils.StrPtr("s1")))
	})

	t.Run("Different products differ", func(t *testing.T) {
		item := CartItem{ProductID: "p1"}
		assert.False(t, item.SameVariant("p2", nil))
	})
}
