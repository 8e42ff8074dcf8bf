package errors

import (
	"fmt"
	"strings"
)

// SuggestName suggests a close match when an unknown name is referenced.
// It uses Levenshtein distance against the declared names, falling back to
// listing a few of them when nothing is close.
func SuggestName(unknown string, declared []string) string {
	if len(declared) == 0 {
		return ""
	}

	minDistance := 1000
	var bestMatch string

	for _, name := range declared {
		dist := levenshteinDistance(unknown, name)
		if dist < minDistance {
			minDistance = dist
			bestMatch = name
		}
	}

	// Only suggest when the match is close enough to be plausible.
	if minDistance < 5 {
		return fmt.Sprintf("Did you mean %q?", bestMatch)
	}

	if len(declared) > 5 {
		return fmt.Sprintf("Declared names include: %s, ...", strings.Join(declared[:5], ", "))
	}
	return fmt.Sprintf("Declared names: %s", strings.Join(declared, ", "))
}

// levenshteinDistance computes the edit distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	len1 := len(s1)
	len2 := len(s2)

	matrix := make([][]int, len1+1)
	for i := range matrix {
		matrix[i] = make([]int, len2+1)
	}

	for i := 0; i <= len1; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = min3(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len1][len2]
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
