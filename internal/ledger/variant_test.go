// internal/ledger/variant_test.go
package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopledger/backend/internal/models"
)

func TestVariantKeyIgnoresSelectionOrder(t *testing.T) {
	a := VariantKey([]models.SelectedAttribute{{Name: "Color", Value: "Red"}, {Name: "Size", Value: "M"}})
	b := VariantKey([]models.SelectedAttribute{{Name: "Size", Value: "M"}, {Name: "Color", Value: "Red"}})

	assert.Equal(t, a, b)
	assert.Equal(t, "Color:Red, Size:M", a)
}

func TestVariantKeyEmptySelection(t *testing.T) {
	assert.Equal(t, StandardVariant, VariantKey(nil))
	assert.Equal(t, StandardVariant, VariantKey([]models.SelectedAttribute{}))
}

func TestVariantKeyDoesNotReorderInput(t *testing.T) {
	sel := []models.SelectedAttribute{{Name: "Size", Value: "M"}, {Name: "Color", Value: "Red"}}
	VariantKey(sel)
	assert.Equal(t, "Size", sel[0].Name)
}

func TestVariants(t *testing.T) {
	p := models.Product{
		Attributes: []models.ProductAttribute{
			{Name: "Size", Values: "S, M"},
			{Name: "Color", Values: "Red,Blue, "},
		},
	}

	assert.Equal(t, []string{
		"Color:Blue, Size:M",
		"Color:Blue, Size:S",
		"Color:Red, Size:M",
		"Color:Red, Size:S",
	}, Variants(p))

	assert.Equal(t, []string{StandardVariant}, Variants(models.Product{}))
}
