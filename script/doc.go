// Package script enforces the output contract on a generated call
// script: at most 90 words, ending in terminal punctuation.
//
// This is the one machine-checkable acceptance gate on generator
// output that holds regardless of whether the upstream prompt was
// followed.
package script
