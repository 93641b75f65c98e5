package roles

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kbukum/callintel/transcript"
	"github.com/kbukum/callintel/util"
)

// greetingRE matches the opening cues of the cold-call convention.
var greetingRE = regexp.MustCompile(`\b(hi|hello|hey|my name|this is|calling)\b`)

// Infer assigns "You"/"Prospect" roles to the two neutral speakers of
// a canonical transcript, if the diarization gate and one of the two
// tie-break conditions allow it. It never guesses: when neither
// condition holds the speakers stay neutral.
func Infer(lines []transcript.Line, p Policy) Assignment {
	p.ApplyDefaults()

	if hasSemanticLabels(lines) {
		return Assignment{
			Verdict: VerdictConfident,
			Confidence: Confidence{
				DiarizationConfident: true,
				RoleConfident:        true,
				Reason:               "transcript carried explicit role markers",
			},
		}
	}

	speakers := neutralSpeakers(lines)
	if len(speakers) != 2 {
		return insufficient(fmt.Sprintf("need exactly 2 speakers, found %d", len(speakers)))
	}

	stats := transcript.Stats(lines)
	top, second := shares(stats, speakers)
	if top > p.MaxTopShare || second < p.MinSecondShare {
		return insufficient(fmt.Sprintf(
			"lopsided word split (top %.2f, second %.2f)", top, second))
	}

	netA := netScore(lines, speakers[0], p)
	netB := netScore(lines, speakers[1], p)

	diff := netA - netB
	if diff < 0 {
		diff = -diff
	}
	if diff >= p.NetMargin {
		rep, prospect := speakers[0], speakers[1]
		if netB > netA {
			rep, prospect = speakers[1], speakers[0]
		}
		return confident(rep, prospect, fmt.Sprintf(
			"keyword net margin %d (%s %d vs %s %d)", diff, speakers[0], netA, speakers[1], netB))
	}

	if rep := coldCallOpener(lines); rep != "" {
		prospect := speakers[0]
		if prospect == rep {
			prospect = speakers[1]
		}
		return confident(rep, prospect, "cold-call opening greeting by first substantive speaker")
	}

	return Assignment{
		Verdict: VerdictNeutral,
		Confidence: Confidence{
			DiarizationConfident: true,
			RoleConfident:        false,
			Reason:               "no decisive role signal, keeping neutral labels",
		},
	}
}

func insufficient(reason string) Assignment {
	return Assignment{
		Verdict:    VerdictInsufficientSignal,
		Confidence: Confidence{Reason: reason},
	}
}

func confident(rep, prospect, reason string) Assignment {
	return Assignment{
		Verdict: VerdictConfident,
		Mapping: map[string]string{
			rep:      transcript.LabelYou,
			prospect: transcript.LabelProspect,
		},
		Confidence: Confidence{
			DiarizationConfident: true,
			RoleConfident:        true,
			Reason:               reason,
		},
	}
}

var semanticLabels = []string{transcript.LabelYou, transcript.LabelProspect}

// hasSemanticLabels reports whether the transcript already carries
// "You"/"Prospect" labels, e.g. from inline markers.
func hasSemanticLabels(lines []transcript.Line) bool {
	for _, line := range lines {
		if util.Contains(semanticLabels, line.Speaker) {
			return true
		}
	}
	return false
}

// neutralSpeakers returns the distinct neutral labels in order of
// first appearance. Other lines are unattributed and do not count.
func neutralSpeakers(lines []transcript.Line) []string {
	labels := util.Map(lines, func(line transcript.Line) string { return line.Speaker })
	return util.Unique(util.Filter(labels, transcript.IsNeutralLabel))
}

// shares returns the two speakers' word shares sorted descending.
func shares(stats map[string]transcript.SpeakerStats, speakers []string) (top, second float64) {
	a := stats[speakers[0]].Words
	b := stats[speakers[1]].Words
	total := a + b
	if total == 0 {
		return 0, 0
	}
	top = float64(a) / float64(total)
	second = float64(b) / float64(total)
	if second > top {
		top, second = second, top
	}
	return top, second
}

// netScore scans a speaker's opening lines against the rep and
// prospect pattern sets and returns repHits - prospectHits.
func netScore(lines []transcript.Line, speaker string, p Policy) int {
	var b strings.Builder
	turns := 0
	for _, line := range lines {
		if line.Speaker != speaker {
			continue
		}
		if turns >= p.ScanTurns || b.Len() >= p.ScanChars {
			break
		}
		b.WriteString(strings.ToLower(line.Text))
		b.WriteByte(' ')
		turns++
	}
	text := b.String()
	if len(text) > p.ScanChars {
		text = text[:p.ScanChars]
	}

	net := 0
	for _, re := range repPatterns {
		if re.MatchString(text) {
			net++
		}
	}
	for _, re := range prospectPatterns {
		if re.MatchString(text) {
			net--
		}
	}
	return net
}

// coldCallOpener returns the speaker label of the first speaker to
// utter at least two words, if their opening text carries a greeting
// or introduction cue. Empty when the convention does not apply.
func coldCallOpener(lines []transcript.Line) string {
	for _, line := range lines {
		if !transcript.IsNeutralLabel(line.Speaker) {
			continue
		}
		if transcript.Words(line.Text) < 2 {
			continue
		}
		if greetingRE.MatchString(strings.ToLower(line.Text)) {
			return line.Speaker
		}
		return ""
	}
	return ""
}
