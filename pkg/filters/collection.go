package filters

import (
	"sort"
	"strings"
)

// TrimAll trims whitespace from every element.
func TrimAll(slice []string) []string {
	result := make([]string, len(slice))
	for i, item := range slice {
		result[i] = strings.TrimSpace(item)
	}
	return result
}

// CompactEmpty removes whitespace-only elements.
func CompactEmpty(slice []string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if strings.TrimSpace(item) != "" {
			result = append(result, item)
		}
	}
	return result
}

// Dedupe removes duplicates, preserving the first occurrence order.
func Dedupe[T comparable](slice []T) []T {
	seen := make(map[T]bool, len(slice))
	result := make([]T, 0, len(slice))

	for _, item := range slice {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}

	return result
}

// LimitLen returns a filter truncating a slice to at most n elements.
// Non-positive n yields an always-empty filter.
func LimitLen[T any](n int) func([]T) []T {
	return func(slice []T) []T {
		if n <= 0 {
			return []T{}
		}
		if len(slice) <= n {
			return slice
		}
		return slice[:n]
	}
}

// SortedStrings returns a sorted copy, leaving the input untouched.
func SortedStrings(slice []string) []string {
	result := make([]string, len(slice))
	copy(result, slice)
	sort.Strings(result)
	return result
}
