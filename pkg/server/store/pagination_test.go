package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		page       int
		limit      int
		totalPages int
	}{
		{name: "exact multiple", total: 40, page: 1, limit: 20, totalPages: 2},
		{name: "partial last page", total: 41, page: 1, limit: 20, totalPages: 3},
		{name: "empty", total: 0, page: 1, limit: 20, totalPages: 0},
		{name: "single record", total: 1, page: 1, limit: 20, totalPages: 1},
		{name: "limit one", total: 7, page: 3, limit: 1, totalPages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.totalPages, p.TotalPages)
		})
	}
}

func TestLimitsWindow(t *testing.T) {
	limits := Limits{Default: 20, Max: 100}

	tests := []struct {
		name                    string
		page, limit             int
		wantPage, wantLimit, wantOffset int
	}{
		{name: "defaults applied", page: 0, limit: 0, wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "negative page", page: -3, limit: 10, wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "second page", page: 2, limit: 10, wantPage: 2, wantLimit: 10, wantOffset: 10},
		{name: "limit clamped to max", page: 1, limit: 5000, wantPage: 1, wantLimit: 100, wantOffset: 0},
		{name: "offset uses normalized limit", page: 3, limit: 0, wantPage: 3, wantLimit: 20, wantOffset: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := limits.Window(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
