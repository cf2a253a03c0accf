package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	p := Parse("", "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)

	p = Parse("abc", "xyz")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}

func TestLimitClamp(t *testing.T) {
	assert.Equal(t, 50, New(1, 500).Limit)
	assert.Equal(t, 50, New(1, 51).Limit)
	assert.Equal(t, 50, New(1, 50).Limit)
	assert.Equal(t, 1, New(1, 0).Limit)
	assert.Equal(t, 1, New(1, -5).Limit)
}

func TestPageFloor(t *testing.T) {
	assert.Equal(t, 1, New(0, 20).Page)
	assert.Equal(t, 1, New(-3, 20).Page)
	assert.Equal(t, 7, New(7, 20).Page)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, New(1, 20).Offset())
	assert.Equal(t, 20, New(2, 20).Offset())
	assert.Equal(t, 4, New(3, 2).Offset())
}

func TestMetaTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 1}, // never below 1
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{3, 2, 2},
		{100, 50, 2},
	}
	for _, tc := range cases {
		meta := New(1, tc.limit).Meta(tc.total)
		assert.Equal(t, tc.want, meta.TotalPages, "total=%d limit=%d", tc.total, tc.limit)
		assert.Equal(t, tc.total, meta.Total)
	}
}
