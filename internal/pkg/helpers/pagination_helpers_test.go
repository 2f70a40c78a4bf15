package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		name               string
		page, size, tot    int
		wantStart, wantEnd int
	}{
		{"first page", 1, 25, 60, 0, 25},
		{"last partial page", 3, 25, 60, 50, 60},
		{"past the end", 4, 25, 60, 60, 60},
		{"no items", 1, 25, 0, 0, 0},
		{"page below one", 0, 10, 5, 0, 5},
		{"default size", 1, 0, 30, 0, DefaultPageSize},
		{"overflowing page", math.MaxInt64/25 + 7, 25, 60, 60, 60},
		{"max page", math.MaxInt64, 100, 60, 60, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateSliceIndices(tt.page, tt.size, tt.tot)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 10)
	assert.Equal(t, uint64(20), offset)
	assert.Equal(t, 10, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)

	offset, _ = CalculateOffsetLimit(math.MaxInt64/25+7, 25)
	assert.Equal(t, uint64(math.MaxInt), offset)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query            string
		wantPage, wantSz int
	}{
		{"", 1, DefaultPageSize},
		{"?page=3&size=10", 3, 10},
		{"?page=-2&size=abc", 1, DefaultPageSize},
		{"?size=500", 1, MaxPageSize},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/students"+tt.query, nil)
		page, size := ParsePaginationParams(c)
		assert.Equal(t, tt.wantPage, page, tt.query)
		assert.Equal(t, tt.wantSz, size, tt.query)
	}
}
