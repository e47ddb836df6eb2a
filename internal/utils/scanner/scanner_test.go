package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caisse-pos/caisse_backend/internal/utils/scanner"
)

func TestCorrectInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"azerty digit row", `&é"'(-è_çà`, "1234567890"},
		{"already digits", "3760123456789", "3760123456789"},
		{"mixed", "é0é'", "2024"},
		{"empty", "", ""},
		{"passthrough letters", "abc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanner.CorrectInput(tt.input))
		})
	}
}
