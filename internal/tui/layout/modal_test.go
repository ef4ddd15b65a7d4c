package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal // 50%, min 40, max 72

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"wide terminal clamps to max", 200, 72},
		{"percentage in range", 100, 50},
		{"narrow uses min", 60, 40},
		{"min exceeds terminal margin", 40, 36}, // 40 - 4
		{"tiny terminal clamps to 1", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, cfg.WidthPercent, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestModalBoundsAndContains(t *testing.T) {
	x, y := ModalBounds(80, 24, 40, 10)
	if x != 20 || y != 7 {
		t.Fatalf("ModalBounds = (%d, %d), want (20, 7)", x, y)
	}

	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"top-left corner", 20, 7, true},
		{"inside", 30, 10, true},
		{"right edge is outside", 60, 10, false},
		{"above", 30, 6, false},
		{"bottom edge is outside", 30, 17, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(x, y, 40, 10, tt.px, tt.py); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}

	if x, y := ModalBounds(10, 5, 40, 10); x != 0 || y != 0 {
		t.Errorf("oversized box should clamp to origin, got (%d, %d)", x, y)
	}
}
