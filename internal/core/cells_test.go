package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false}, // Right edge is exclusive
		{5, 5, false}, // Bottom edge is exclusive
		{1, 3, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectClip(t *testing.T) {
	bounds := NewRect(0, 0, 10, 5)

	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{"inside", NewRect(2, 1, 3, 2), NewRect(2, 1, 3, 2)},
		{"overhangs right", NewRect(8, 1, 5, 1), NewRect(8, 1, 2, 1)},
		{"overhangs top left", NewRect(-3, -2, 5, 4), NewRect(0, 0, 2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clip(bounds); got != tt.want {
				t.Errorf("Clip() = %+v, expected %+v", got, tt.want)
			}
		})
	}

	if !NewRect(20, 20, 3, 3).Clip(bounds).Empty() {
		t.Error("Rect outside bounds should clip to empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}
