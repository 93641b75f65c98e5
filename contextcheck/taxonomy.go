package contextcheck

import (
	"regexp"

	"github.com/kbukum/callintel/util"
)

// Offer family names.
const (
	offerWebsite        = "website"
	offerAIReceptionist = "ai_receptionist"
	offerBooking        = "booking"
	offerSoftware       = "software"
)

// Offer keyword taxonomies. The sets are disjoint on purpose: a term
// must never count toward two offer families.
var offerTaxonomies = map[string][]string{
	offerWebsite: {
		"website", "web site", "web design", "landing page", "seo",
		"search engine", "google ranking", "marketing", "ad campaign",
		"online ads",
	},
	offerAIReceptionist: {
		"ai receptionist", "virtual receptionist", "answering service",
		"missed call", "missed calls", "texts back", "text back",
		"after hours calls", "call answering",
	},
	offerBooking: {
		"booking", "bookings", "appointment", "appointments",
		"scheduling software", "no-show", "no shows", "calendar slots",
	},
	offerSoftware: {
		"software", "platform", "crm", "dashboard", "automation",
		"integration", "app",
	},
}

// prospectTypeTerms identify the kind of business on the other end of
// the call, used for the "who was called" missing-info dimension.
var prospectTypeTerms = []string{
	"dental", "dentist", "plumber", "plumbing", "roofing", "roofer",
	"hvac", "salon", "barber", "restaurant", "gym", "clinic", "law firm",
	"attorney", "real estate", "realtor", "landscaping", "auto shop",
	"contractor", "med spa", "chiropractor",
}

// termRE caches a word-bounded matcher per term so "app" never counts
// inside "appointment".
var termRE = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	add := func(terms []string) {
		for _, term := range terms {
			res[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	for _, terms := range offerTaxonomies {
		add(terms)
	}
	add(prospectTypeTerms)
	return res
}()

// offerHits returns the distinct matched taxonomy terms per offer
// family in lowercased text.
func offerHits(text string) map[string][]string {
	hits := make(map[string][]string)
	for family, terms := range offerTaxonomies {
		matched := util.Filter(terms, func(term string) bool {
			return termRE[term].MatchString(text)
		})
		if len(matched) > 0 {
			hits[family] = matched
		}
	}
	return hits
}

// prospectType returns the first matched business-type term, or "".
func prospectType(text string) string {
	for _, term := range prospectTypeTerms {
		if termRE[term].MatchString(text) {
			return term
		}
	}
	return ""
}
