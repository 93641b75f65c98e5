package util

import "strings"

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// Unique returns a slice with duplicate values removed, keeping the
// first occurrence's position.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Map applies fn to every element of a slice.
func Map[T, U any](slice []T, fn func(T) U) []U {
	result := make([]U, len(slice))
	for i, item := range slice {
		result[i] = fn(item)
	}
	return result
}

// Filter returns the elements for which pred is true.
func Filter[T any](slice []T, pred func(T) bool) []T {
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if pred(item) {
			result = append(result, item)
		}
	}
	return result
}

// TruncateWords normalizes whitespace and cuts s at the word boundary
// after max words.
func TruncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) > max {
		words = words[:max]
	}
	return strings.Join(words, " ")
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
