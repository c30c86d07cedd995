package engine

import (
	"strings"
	"testing"
)

func TestValidateBoardConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *BoardConfig
		wantErr string
	}{
		{"nil config", nil, "cannot be nil"},
		{"valid classic", DefaultConfig(), ""},
		{"valid minimum", &BoardConfig{Name: "tiny", Houses: 2, Seeds: 1}, ""},
		{"missing name", &BoardConfig{Houses: 7, Seeds: 7}, "name is required"},
		{"too few houses", &BoardConfig{Name: "x", Houses: 1, Seeds: 7}, "houses must be"},
		{"too many houses", &BoardConfig{Name: "x", Houses: 13, Seeds: 7}, "houses must be"},
		{"zero seeds", &BoardConfig{Name: "x", Houses: 7, Seeds: 0}, "seeds must be"},
		{"too many seeds", &BoardConfig{Name: "x", Houses: 7, Seeds: 25}, "seeds must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBoardConfig(tt.config)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBoardConfigSlots(t *testing.T) {
	if got := DefaultConfig().Slots(); got != 16 {
		t.Errorf("classic Slots() = %d, want 16", got)
	}
	quick := &BoardConfig{Name: "quick", Houses: 3, Seeds: 4}
	if got := quick.Slots(); got != 8 {
		t.Errorf("quick Slots() = %d, want 8", got)
	}
}
