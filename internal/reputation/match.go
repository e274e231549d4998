package reputation

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyThreshold is the minimum name similarity for a Levenshtein fallback
// match. A policy knob, not a magic number: tests probe its exact boundary.
const FuzzyThreshold = 0.65

// Match types, in the priority order MatchEntry checks them.
const (
	MatchDomain         = "domain"
	MatchDomainPartial  = "domain_partial"
	MatchEmail          = "email"
	MatchUPI            = "upi"
	MatchPhone          = "phone"
	MatchCompanyExact   = "company_exact"
	MatchCompanyPartial = "company_partial"
	MatchFuzzy          = "fuzzy"
)

// Match is the outcome of testing one record against a query.
type Match struct {
	Matched bool    `json:"matched"`
	Type    string  `json:"matchType,omitempty"`
	Score   float64 `json:"score"`
}

var (
	schemeRe   = regexp.MustCompile(`^https?://`)
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// NormalizeDomain strips scheme, www prefix and any path from a URL-ish
// string, leaving the bare lowercased host.
func NormalizeDomain(s string) string {
	s = schemeRe.ReplaceAllString(strings.ToLower(s), "")
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSpace(strings.SplitN(s, "/", 2)[0])
}

func normalizeStr(s string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(s), "")
}

// Distance is the edit distance between a and b after lowercasing and
// trimming, insert/delete/substitute each costing 1.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(
		strings.ToLower(strings.TrimSpace(a)),
		strings.ToLower(strings.TrimSpace(b)),
	)
}

// Similarity maps edit distance into [0,1]: identical strings score 1.
func Similarity(a, b string) float64 {
	al := strings.ToLower(strings.TrimSpace(a))
	bl := strings.ToLower(strings.TrimSpace(b))
	maxLen := len(al)
	if len(bl) > maxLen {
		maxLen = len(bl)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(Distance(a, b))/float64(maxLen)
}

// MatchEntry tests a record against a query through a strict priority
// ladder: exact domain, partial domain, email, UPI, phone, exact company
// name, partial company name, then Levenshtein similarity. The first rule
// that fires wins, even if a lower-priority rule would score higher.
func MatchEntry(rec *ScamRecord, query string) Match {
	q := strings.TrimSpace(query)
	if q == "" {
		return Match{}
	}

	qNorm := normalizeStr(q)
	qDomain := NormalizeDomain(q)
	qLower := strings.ToLower(q)
	recDomain := NormalizeDomain(rec.Domain)
	nameNorm := normalizeStr(rec.CompanyName)

	if recDomain == qDomain {
		return Match{Matched: true, Type: MatchDomain, Score: 1}
	}
	if len(qDomain) > 5 && strings.Contains(recDomain, qDomain) {
		return Match{Matched: true, Type: MatchDomainPartial, Score: 0.85}
	}
	for _, e := range rec.RecruiterEmails {
		if normalizeStr(e) == qNorm || strings.Contains(strings.ToLower(e), qLower) {
			return Match{Matched: true, Type: MatchEmail, Score: 1}
		}
	}
	for _, u := range rec.UPIIDs {
		if normalizeStr(u) == qNorm || strings.Contains(strings.ToLower(u), qLower) {
			return Match{Matched: true, Type: MatchUPI, Score: 1}
		}
	}
	if qDigits := nonDigitRe.ReplaceAllString(q, ""); qDigits != "" {
		for _, p := range rec.Phones {
			if strings.Contains(nonDigitRe.ReplaceAllString(p, ""), qDigits) {
				return Match{Matched: true, Type: MatchPhone, Score: 1}
			}
		}
	}
	if nameNorm == qNorm {
		return Match{Matched: true, Type: MatchCompanyExact, Score: 1}
	}
	if len(qNorm) > 4 && strings.Contains(nameNorm, qNorm) {
		return Match{Matched: true, Type: MatchCompanyPartial, Score: 0.9}
	}
	if sim := Similarity(rec.CompanyName, q); sim >= FuzzyThreshold {
		return Match{Matched: true, Type: MatchFuzzy, Score: sim}
	}

	return Match{}
}
