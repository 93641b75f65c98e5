package contextcheck

import (
	"regexp"
	"strings"
)

// offerFamilies fixes the iteration order so inference output is
// deterministic.
var offerFamilies = []string{offerWebsite, offerAIReceptionist, offerBooking, offerSoftware}

var (
	prospectNameRE = regexp.MustCompile(`\b(?:is this|speaking with|am i talking to)\s+([a-z]+)\b`)
	locationRE     = regexp.MustCompile(`\b(?:based in|out of|over in)\s+([a-z]+(?: [a-z]+)?)\b`)
)

// Inferred is the business context read out of transcript text. It is
// derived read-only and consumed only by the conflict detector.
type Inferred struct {
	// OfferKeywords lists the matched offer taxonomy terms in fixed
	// family order.
	OfferKeywords []string `json:"offer_keywords,omitempty"`
	// ProspectType is the matched business-type term, if any.
	ProspectType string `json:"prospect_type,omitempty"`
	// ProspectName is the called party's name, if the transcript
	// carries an identification phrase.
	ProspectName string `json:"prospect_name,omitempty"`
	// Location is a place mention, if any.
	Location string `json:"location,omitempty"`
}

// Infer extracts the business context suggested by free text.
func Infer(text string) Inferred {
	lower := strings.ToLower(text)

	var keywords []string
	hits := offerHits(lower)
	for _, family := range offerFamilies {
		keywords = append(keywords, hits[family]...)
	}

	inf := Inferred{
		OfferKeywords: keywords,
		ProspectType:  prospectType(lower),
	}
	if m := prospectNameRE.FindStringSubmatch(lower); m != nil {
		inf.ProspectName = m[1]
	}
	if m := locationRE.FindStringSubmatch(lower); m != nil {
		inf.Location = m[1]
	}
	return inf
}
