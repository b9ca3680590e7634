// Package utils contains general helper functions shared by the vaultmap tools.
package utils

import (
	"strings"
)

const (
	// gitDirectoryName is the name of the Git repository directory.
	gitDirectoryName = ".git"
	// patternListSeparator splits comma-separated flag and configuration values.
	patternListSeparator = ","
)

// DefaultVaultExclusions lists directory names that never hold notes in a typical vault.
var DefaultVaultExclusions = []string{".git", ".obsidian", ".DS_Store", "node_modules", ".trash"}

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// ContainsString checks if a slice of strings contains a specific target string.
func ContainsString(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if currentString == targetString {
			return true
		}
	}
	return false
}

// NormalizePatternList splits comma-separated values, trims whitespace, drops
// empty items and duplicates. A nil result means no patterns were supplied.
func NormalizePatternList(values []string) []string {
	var normalized []string
	for _, value := range values {
		for _, item := range strings.Split(value, patternListSeparator) {
			trimmedItem := strings.TrimSpace(item)
			if trimmedItem == "" {
				continue
			}
			normalized = append(normalized, trimmedItem)
		}
	}
	if len(normalized) == 0 {
		return nil
	}
	return DeduplicatePatterns(normalized)
}
