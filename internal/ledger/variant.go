// internal/ledger/variant.go
package ledger

import (
	"sort"
	"strings"

	"github.com/shopledger/backend/internal/models"
)

// StandardVariant keys stock for lines that picked no attributes.
const StandardVariant = "Standard"

// VariantKey canonicalizes a selection as "Name:Value" pairs sorted by attribute name,
// so the same logical variant maps to one key whatever order the attributes were picked in.
func VariantKey(selected []models.SelectedAttribute) string {
	if len(selected) == 0 {
		return StandardVariant
	}

	pairs := append([]models.SelectedAttribute(nil), selected...)
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Name != pairs[j].Name {
			return pairs[i].Name < pairs[j].Name
		}
		return pairs[i].Value < pairs[j].Value
	})

	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Name + ":" + p.Value
	}
	return strings.Join(parts, ", ")
}

// Variants lists every variant key of the product: the cross product of all attribute values.
func Variants(p models.Product) []string {
	combos := [][]models.SelectedAttribute{nil}
	for _, attr := range p.Attributes {
		options := attr.Options()
		if len(options) == 0 {
			continue
		}
		next := make([][]models.SelectedAttribute, 0, len(combos)*len(options))
		for _, combo := range combos {
			for _, opt := range options {
				extended := append(append([]models.SelectedAttribute(nil), combo...), models.SelectedAttribute{Name: attr.Name, Value: opt})
				next = append(next, extended)
			}
		}
		combos = next
	}

	keys := make([]string, 0, len(combos))
	for _, combo := range combos {
		keys = append(keys, VariantKey(combo))
	}
	sort.Strings(keys)
	return keys
}
