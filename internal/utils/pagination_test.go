package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePageParams(t *testing.T) {
	page, limit, offset := ParsePageParams("3", "10")
	require.Equal(t, 3, page)
	require.Equal(t, 10, limit)
	require.Equal(t, 20, offset)

	// Дефолты при мусорных значениях
	page, limit, offset = ParsePageParams("abc", "")
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)
	require.Equal(t, 0, offset)

	// Ограничение limit сверху
	_, limit, _ = ParsePageParams("1", "1000")
	require.Equal(t, 100, limit)

	// Отрицательные значения приводятся к дефолтам
	page, limit, offset = ParsePageParams("-5", "-1")
	require.Equal(t, 1, page)
	require.Equal(t, 10, limit)
	require.Equal(t, 0, offset)
}

func TestParseLimitOffset(t *testing.T) {
	limit, offset := ParseLimitOffset("5", "40")
	require.Equal(t, 5, limit)
	require.Equal(t, 40, offset)

	// Дефолты при мусорных значениях
	limit, offset = ParseLimitOffset("", "abc")
	require.Equal(t, 20, limit)
	require.Equal(t, 0, offset)

	// Ограничение limit сверху, отрицательный offset обнуляется
	limit, offset = ParseLimitOffset("1000", "-3")
	require.Equal(t, 100, limit)
	require.Equal(t, 0, offset)
}

func TestTotalPages(t *testing.T) {
	// 25 объявлений при limit=10 дают 3 страницы, последняя с 5 записями
	require.Equal(t, 3, TotalPages(25, 10))

	require.Equal(t, 1, TotalPages(10, 10))
	require.Equal(t, 2, TotalPages(11, 10))
	require.Equal(t, 0, TotalPages(0, 10))
	require.Equal(t, 0, TotalPages(10, 0))
}
