package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"простое название", "Wedding Dresses", "wedding-dresses"},
		{"лишние пробелы", "  Men   Suits  ", "men-suits"},
		{"спецсимволы", "Bags & Accessories!", "bags-accessories"},
		{"цифры сохраняются", "Top 10 Items", "top-10-items"},
		{"только спецсимволы", "!!!", ""},
		{"уже slug", "kids-clothing", "kids-clothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyNonASCII(t *testing.T) {
	slug := Slugify("Gözəllik və Sağlamlıq")

	require.NotEmpty(t, slug)
	for _, r := range slug {
		ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
		require.True(t, ok, "недопустимый символ %q в slug %q", r, slug)
	}
	require.NotEqual(t, byte('-'), slug[0])
	require.NotEqual(t, byte('-'), slug[len(slug)-1])
}

func TestSlugifyDeterministic(t *testing.T) {
	require.Equal(t, Slugify("Oyun konsolları"), Slugify("Oyun konsolları"))
}
