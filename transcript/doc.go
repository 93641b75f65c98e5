// Package transcript converts raw diarized call audio output into a
// canonical, speaker-labeled transcript.
//
// Two input shapes are supported: an ordered utterance list from a
// diarization backend, and a single text blob with inline speaker
// markers ("Speaker A:", "Prospect:", "Rep:"). Both paths produce the
// same canonical form: ordered lines where adjacent lines never share
// a speaker label.
//
// # Usage
//
//	lines := transcript.Normalize(utterances)
//	text := transcript.Render(lines)
//
// Normalization is idempotent: parsing a rendered canonical transcript
// yields the same lines back.
package transcript
