// Package roles upgrades the two neutral speakers of a canonical
// transcript to semantic "You"/"Prospect" roles, but only behind a
// confidence gate.
//
// The result is an explicit tri-state: confident roles, neutral (the
// gate passed but no decisive signal), or insufficient signal (wrong
// speaker count or a lopsided word-share split). Callers must handle
// the non-confident states; a neutral-but-honest transcript is always
// preferred over a wrong guess.
package roles
