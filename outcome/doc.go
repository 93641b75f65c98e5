// Package outcome classifies a canonical call transcript into one
// call-outcome key.
//
// Two classifiers live here. Classify is the live, precedence-ordered
// rule cascade: the first matching rule wins, with UNCLEAR as the
// honest fallback when the transcript has too little signal. Refine
// runs later, at persistence time, and corrects the live result with
// a scored evidence system (booked-meeting evidence, explicit decline
// language, and a synonym table for the upstream generator's label),
// because rule-backed evidence outranks a less reliable model label.
//
// Every rule-set decision keeps the matched phrase as evidence for
// auditability.
package outcome
