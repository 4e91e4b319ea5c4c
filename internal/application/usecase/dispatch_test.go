package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/fontsized/internal/application/usecase"
)

func TestParseFontCommand(t *testing.T) {
	tests := []struct {
		cmd       string
		wantDelta int
		wantOK    bool
	}{
		{"font:increment", 1, true},
		{"font:decrement", -1, true},
		{"font:recrement", 0, false},
		{"font:crement", 0, false},
		{"font:increment ", 0, false},
		{"FONT:increment", 0, false},
		{"zoom:increment", 0, false},
		{"font:", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run("cmd "+tt.cmd, func(t *testing.T) {
			delta, ok := usecase.ParseFontCommand(tt.cmd)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}
