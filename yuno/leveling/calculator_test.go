package leveling

import "testing"

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int64
		want int64
	}{
		{0, 0},
		{-50, 0},
		{99, 0},
		{100, 1},
		{150, 1},
		{399, 1},
		{400, 2},
		{899, 2},
		{900, 3},
		{10000, 10},
	}

	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int64
		want  int64
	}{
		{0, 0},
		{-1, 0},
		{1, 100},
		{2, 400},
		{3, 900},
		{10, 10000},
	}

	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelRoundTrips(t *testing.T) {
	for level := int64(0); level <= 50; level++ {
		xp := XPForLevel(level)
		if got := Level(xp); got != level {
			t.Errorf("Level(XPForLevel(%d)) = %d", level, got)
		}
		if level > 0 {
			if got := Level(xp - 1); got != level-1 {
				t.Errorf("Level(%d) = %d, want %d", xp-1, got, level-1)
			}
		}
	}
}
