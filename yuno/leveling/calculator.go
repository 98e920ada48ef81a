package leveling

import "math"

// Level maps accumulated XP to a level. 100 XP reaches level 1, 400 reaches
// level 2, 900 reaches level 3.
func Level(xp int64) int64 {
	if xp <= 0 {
		return 0
	}
	return int64(math.Sqrt(float64(xp) / 100))
}

// XPForLevel is the minimum XP needed to hold the given level.
func XPForLevel(level int64) int64 {
	if level <= 0 {
		return 0
	}
	return level * level * 100
}
