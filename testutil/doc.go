// Package testutil provides transcript fixture builders shared by the
// rule-layer package tests.
package testutil
