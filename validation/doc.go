// Package validation validates inputs at the engine boundary.
//
// It wraps go-playground/validator struct-tag validation and a small
// field-error collector. The analysis engine itself never errors on
// malformed transcript content; validation exists for the surrounding
// service layer to reject requests that are structurally unusable
// (for example an oversized context string) before analysis.
package validation
