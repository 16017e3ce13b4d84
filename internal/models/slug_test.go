package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baharkarakas/blog-backend/internal/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple words", "My First Post", "my-first-post"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"multiple spaces collapse", "a   b", "a-b"},
		{"existing hyphens kept single", "go -- the language", "go-the-language"},
		{"underscores act as separators", "snake_case_title", "snake-case-title"},
		{"digits survive", "Top 10 Tips for 2024", "top-10-tips-for-2024"},
		{"leading and trailing noise", "  !!Edge!!  ", "edge"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.Slugify(tt.title))
		})
	}
}
