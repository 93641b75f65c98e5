// Package util provides small generic helpers shared across the
// engine packages.
package util
