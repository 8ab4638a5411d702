package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"deploy", "deploy", 0},
		{"deploy", "depoly", 2},
		{"Deploy", "deploy", 0}, // case is normalized away
	}
	for _, c := range cases {
		if got := LevenshteinDistance(c.s1, c.s2); got != c.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", c.s1, c.s2, got, c.want)
		}
	}
}

func TestFuzzyMatch_Substring(t *testing.T) {
	if !FuzzyMatch("deploy", "Deploy staging environment", 2) {
		t.Error("Expected substring match")
	}
}

func TestFuzzyMatch_Typo(t *testing.T) {
	if !FuzzyMatch("depoly", "Deploy staging environment", 2) {
		t.Error("Expected typo within threshold to match")
	}
	if FuzzyMatch("xylophone", "Deploy staging environment", 2) {
		t.Error("Expected unrelated query to miss")
	}
}

func TestFuzzyMatch_Prefix(t *testing.T) {
	if !FuzzyMatch("environ", "Deploy staging environment", 1) {
		t.Error("Expected word-prefix match")
	}
}

func TestFuzzyMatchActivity_ThresholdScalesWithQueryLength(t *testing.T) {
	// Short queries tolerate a single edit only
	if FuzzyMatchActivity("db", "Review quarterly budget", "", "project") {
		t.Error("Short unrelated query must not match")
	}

	// Longer queries tolerate more edits
	if !FuzzyMatchActivity("deploymnet", "Deployment checklist", "", "project") {
		t.Error("Expected long query with transposition to match")
	}
}

func TestFuzzyMatchActivity_SearchesCategory(t *testing.T) {
	if !FuzzyMatchActivity("urgent", "Fix login page", "", "urgent") {
		t.Error("Expected category to be searched")
	}
}

func TestCalculateRelevanceScore_TitleOutranksDescription(t *testing.T) {
	titleHit := CalculateRelevanceScore("deploy", "Deploy staging", "", "project")
	descHit := CalculateRelevanceScore("deploy", "Release work", "deploy the new build", "project")

	if titleHit <= descHit {
		t.Errorf("Title match (%f) should outrank description match (%f)", titleHit, descHit)
	}
}

func TestCalculateRelevanceScore_NoMatch(t *testing.T) {
	if score := CalculateRelevanceScore("xylophone", "Deploy staging", "release work", "project"); score != 0 {
		t.Errorf("Expected zero score for unrelated query, got %f", score)
	}
}
