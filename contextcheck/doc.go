// Package contextcheck compares the user-declared business context
// against what the transcript itself suggests is being sold.
//
// A mismatch is flagged only in the two asymmetric website/seo vs
// ai-receptionist cases; every other combination, including "neither
// side has signal", is not a conflict. Absence of evidence is not
// evidence of mismatch. The detector also proposes up to two
// missing-information prompts when both the declared context and the
// transcript are silent on a dimension.
package contextcheck
