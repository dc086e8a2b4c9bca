package t2048

import (
	"testing"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestTileIsEmpty(t *testing.T) {
	var zero Tile
	if !zero.IsEmpty() {
		t.Error("zero Tile should be empty")
	}
	if Tile(2).IsEmpty() {
		t.Error("Tile(2) should not be empty")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected core.Color
	}{
		{0, "#cdc1b4"},
		{2, "#eee4da"},
		{4, "#ede0c8"},
		{8, "#f2b179"},
		{128, "#edcf72"},
		{2048, "#edc22e"},
		{4096, "#ff0000"},
		{3, "#ff0000"},
	}

	for _, tt := range tests {
		if got := tt.tile.Color(); got != tt.expected {
			t.Errorf("Tile(%d).Color() = %q, want %q", tt.tile, got, tt.expected)
		}
	}
}

func TestTileTextColor(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected core.Color
	}{
		{0, "#776e65"},
		{2, "#776e65"},
		{8, "#776e65"},
		{16, "#f9f6f2"},
		{2048, "#f9f6f2"},
	}

	for _, tt := range tests {
		if got := tt.tile.TextColor(); got != tt.expected {
			t.Errorf("Tile(%d).TextColor() = %q, want %q", tt.tile, got, tt.expected)
		}
	}
}

func TestTileString(t *testing.T) {
	if s := Tile(0).String(); s != "" {
		t.Errorf("empty tile String() = %q, want empty", s)
	}
	if s := Tile(1024).String(); s != "1024" {
		t.Errorf("Tile(1024).String() = %q, want 1024", s)
	}
}
