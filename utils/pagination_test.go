package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		total      int64
		totalPages int
	}{
		{"23 records at page size 10", 1, 10, 23, 3},
		{"exact multiple", 2, 10, 30, 3},
		{"single partial page", 1, 10, 4, 1},
		{"empty result", 1, 10, 0, 0},
		{"page size 1", 1, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.total)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.pageSize, p.PageSize)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&pageSize=25", 3, 25},
		{"zero page clamps to 1", "page=0", 1, 10},
		{"negative page clamps to 1", "page=-2", 1, 10},
		{"oversized pageSize clamps to 100", "pageSize=500", 1, 100},
		{"garbage falls back to defaults", "page=abc&pageSize=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/?"+tt.query, nil)
			page, pageSize := ParsePagination(c)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.pageSize, pageSize)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 10, Offset(2, 10))
	assert.Equal(t, 40, Offset(5, 10))
}
