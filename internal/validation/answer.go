package validation

import (
	"strings"
	"unicode"
)

// NormalizeAnswer normalizes an answer for comparison
func NormalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))

	// Remove common prefixes
	for _, prefix := range []string{"the ", "a ", "an "} {
		answer = strings.TrimPrefix(answer, prefix)
	}

	var result strings.Builder
	for _, r := range answer {
		if !unicode.IsPunct(r) {
			result.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(result.String()), " ")
}

// IsSimilarAnswer checks if two answers are similar enough to be considered the same
func IsSimilarAnswer(answer1, answer2 string) bool {
	normalized1 := NormalizeAnswer(answer1)
	normalized2 := NormalizeAnswer(answer2)

	if normalized1 == normalized2 {
		return true
	}
	if normalized1 == "" || normalized2 == "" {
		return false
	}

	// Whole-word containment, so "paris" matches "paris france" but "e" does not match "edison"
	padded1 := " " + normalized1 + " "
	padded2 := " " + normalized2 + " "
	if strings.Contains(padded1, padded2) || strings.Contains(padded2, padded1) {
		return true
	}

	r1, r2 := []rune(normalized1), []rune(normalized2)
	distance := levenshteinDistance(r1, r2)

	// Under 20% of the longer answer counts as a typo
	return float64(distance)/float64(max(len(r1), len(r2))) < 0.2
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 []rune) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			if s1[i-1] == s2[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(
					prev[j]+1,   // deletion
					curr[j-1]+1, // insertion
					prev[j-1]+1, // substitution
				)
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}
