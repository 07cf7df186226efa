package imageloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		props    Props
		expected string
	}{
		{
			name:     "Default quality",
			props:    Props{Src: "https://cdn.example.com/a.png", Width: 640},
			expected: "https://cdn.example.com/a.png?w=640&q=75",
		},
		{
			name:     "Explicit quality",
			props:    Props{Src: "/static/b.jpg", Width: 1200, Quality: 90},
			expected: "/static/b.jpg?w=1200&q=90",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Load(tc.props))
		})
	}
}
