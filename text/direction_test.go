package text

import (
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want di.Direction
	}{
		{"latin", "Abcdefghijklmnop", di.DirectionLTR},
		{"hebrew", "שלום", di.DirectionRTL},
		{"arabic", "مرحبا", di.DirectionRTL},
		{"digits", "12345", di.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Direction(tt.s); got != tt.want {
				t.Errorf("Direction(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
