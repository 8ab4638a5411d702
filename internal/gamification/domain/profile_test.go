package domain

import "testing"

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{499, 3},
		{999, 4},
		{1000, 5},
		{31999, 9},
		{32000, 10},
		{1000000, 10},
	}
	for _, c := range cases {
		if got := LevelForPoints(c.points); got != c.want {
			t.Errorf("LevelForPoints(%d) = %d, want %d", c.points, got, c.want)
		}
	}
}

func TestNextThreshold(t *testing.T) {
	next, ok := NextThreshold(1)
	if !ok || next != 100 {
		t.Errorf("NextThreshold(1) = %d, %v; want 100, true", next, ok)
	}

	next, ok = NextThreshold(9)
	if !ok || next != 32000 {
		t.Errorf("NextThreshold(9) = %d, %v; want 32000, true", next, ok)
	}

	if _, ok := NextThreshold(MaxLevel); ok {
		t.Error("Expected no threshold beyond the level cap")
	}
}

func TestHasUnlocked(t *testing.T) {
	p := NewProfile("u1")
	if p.HasUnlocked("first-completion") {
		t.Error("Fresh profile must have no unlocks")
	}

	p.UnlockedAchievementIDs = append(p.UnlockedAchievementIDs, "first-completion")
	if !p.HasUnlocked("first-completion") {
		t.Error("Expected unlocked id to be reported")
	}
}

func TestAchievementSatisfied(t *testing.T) {
	tenCompletions, ok := FindAchievement("ten-completions")
	if !ok {
		t.Fatal("ten-completions missing from catalog")
	}
	if tenCompletions.Satisfied(9, 1) {
		t.Error("9 completions must not satisfy a 10-completion predicate")
	}
	if !tenCompletions.Satisfied(10, 1) {
		t.Error("10 completions must satisfy a 10-completion predicate")
	}

	levelFive, ok := FindAchievement("level-five")
	if !ok {
		t.Fatal("level-five missing from catalog")
	}
	if levelFive.Satisfied(100, 4) {
		t.Error("Level 4 must not satisfy a level-5 predicate")
	}
	if !levelFive.Satisfied(0, 5) {
		t.Error("Level 5 must satisfy a level-5 predicate regardless of completions")
	}
}
