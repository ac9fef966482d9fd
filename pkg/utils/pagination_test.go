package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPaginationParams(t *testing.T) {
	p := GetPaginationParams(0, 0, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = GetPaginationParams(-3, -1, 10)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = GetPaginationParams(4, 25, 10)
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, PaginationParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, PaginationParams{Page: 0, Limit: 10}.Offset())
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(25, 1, 10, 10)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasMore)

	meta = CalculateMeta(25, 3, 10, 5)
	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasMore)

	meta = CalculateMeta(0, 1, 10, 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasMore)
}
