package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults applied to zero values", 0, 0, 1, 10},
		{"negative page falls back to first", -3, 20, 1, 20},
		{"page size clamped to maximum", 2, 500, 2, 100},
		{"valid values pass through", 3, 25, 3, 25},
		{"negative page size falls back to default", 1, -1, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := NormalizePagination(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int64
		pageSize   int
		want       int64
	}{
		{"empty set has no pages", 0, 10, 0},
		{"exact multiple", 30, 10, 3},
		{"remainder adds a page", 31, 10, 4},
		{"single item", 1, 10, 1},
		{"invalid page size yields zero", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.totalCount, tt.pageSize))
		})
	}
}
