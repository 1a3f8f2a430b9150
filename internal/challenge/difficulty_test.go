package challenge

import "testing"

func TestClampDifficulty(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-10, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{6, 5},
		{100, 5},
	}
	for _, tt := range tests {
		if got := ClampDifficulty(tt.in); got != tt.want {
			t.Errorf("ClampDifficulty(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampDifficulty_Idempotent(t *testing.T) {
	for d := -10; d <= 10; d++ {
		once := ClampDifficulty(d)
		if twice := ClampDifficulty(once); twice != once {
			t.Errorf("clamp not idempotent for %d: %d != %d", d, once, twice)
		}
	}
}

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		completed int
		want      int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 2},
		{6, 3},
		{9, 4},
		{12, 5},
		{13, 5},
		{100, 5},
		{1000000, 5},
	}
	for _, tt := range tests {
		if got := NextDifficulty(tt.completed); got != tt.want {
			t.Errorf("NextDifficulty(%d) = %d, want %d", tt.completed, got, tt.want)
		}
	}
}
