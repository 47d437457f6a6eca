// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, PaginationParams{Page: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, result.Data)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 3, result.TotalPages)

	result = Paginate(items, PaginationParams{Page: 3, Limit: 2})
	assert.Equal(t, []int{5}, result.Data)

	result = Paginate(items, PaginationParams{Page: 9, Limit: 2})
	assert.Equal(t, []int{}, result.Data)
}
