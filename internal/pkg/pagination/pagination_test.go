package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
		wantOffset          int
	}{
		{page: 1, limit: 20, wantPage: 1, wantLimit: 20, wantOffset: 0},
		{page: 3, limit: 10, wantPage: 3, wantLimit: 10, wantOffset: 20},
		{page: 0, limit: 0, wantPage: 1, wantLimit: DefaultLimit, wantOffset: 0},
		{page: -4, limit: 500, wantPage: 1, wantLimit: MaxLimit, wantOffset: 0},
	}

	for _, tt := range tests {
		p := NewParams(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, p.Page)
		assert.Equal(t, tt.wantLimit, p.Limit)
		assert.Equal(t, tt.wantOffset, p.Offset)
	}
}

func TestParams_Window(t *testing.T) {
	p := NewParams(2, 2)

	start, end := p.Window(5)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	start, end = p.Window(3)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)

	start, end = NewParams(4, 2).Window(3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(NewParams(2, 2), 5)

	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = GetMeta(NewParams(1, 20), 0)
	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
