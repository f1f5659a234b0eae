package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple", "Hello World", "hello-world"},
		{"Punctuation dropped", "Hello, World!", "hello-world"},
		{"Apostrophe dropped without separator", "don't stop", "dont-stop"},
		{"Whitespace runs collapse", "a \t b\n\nc", "a-b-c"},
		{"Hyphen runs collapse", "a --- b", "a-b"},
		{"Underscores kept", "snake_case body", "snake_case-body"},
		{"Leading and trailing separators stripped", "  --hello--  ", "hello"},
		{"Digits kept", "Top 10 posts of 2024", "top-10-posts-of-2024"},
		{"Only punctuation", "!!!???", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Make(tt.input))
		})
	}
}

func TestForPost(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "Short body slugified whole",
			body:     "Hello world",
			expected: "hello-world",
		},
		{
			name:     "Long body truncated to 30 chars before slugifying",
			body:     "Hello world, this is a long test body exceeding thirty chars",
			expected: "hello-world-this-is-a-long-te",
		},
		{
			name:     "Truncation happens before slugification",
			body:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa tail never appears",
			expected: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		},
		{
			name:     "Multibyte runes are not split",
			body:     "héllo wörld és még sok minden más itt",
			expected: "héllo-wörld-és-még-sok-minden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForPost(tt.body))
		})
	}
}

func TestForPost_Recomputation(t *testing.T) {
	// Updating a body must produce the same slug as creating it fresh.
	body := "Edited body that replaces the original text"
	assert.Equal(t, ForPost(body), ForPost(body))
	assert.NotEqual(t, ForPost("first body"), ForPost(body))
}
