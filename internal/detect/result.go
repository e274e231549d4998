// Package detect implements the posting analyzers and the composite fraud
// scorer. Every analyzer is a pure function over an immutable rules.Set: bad
// input degrades to a fixed-penalty result, it never returns an error.
package detect

import "internguard-engine/internal/rules"

// Verdict levels reported by the per-signal analyzers.
const (
	VerdictNotProvided = "not_provided"
	VerdictClean       = "clean"
	VerdictLowRisk     = "low_risk"
	VerdictSuspicious  = "suspicious"
	VerdictDangerous   = "dangerous"
)

// KeywordHit records one matched dictionary entry. Weight counts once per
// entry toward the raw score; Count is the number of occurrences, kept for
// display only.
type KeywordHit struct {
	Label    string         `json:"label"`
	Severity rules.Severity `json:"severity"`
	Weight   int            `json:"weight"`
	Count    int            `json:"count"`
}

type KeywordResult struct {
	Score int          `json:"score"`
	Hits  []KeywordHit `json:"hits"`
}

type URLResult struct {
	Score    int      `json:"score"`
	Flags    []string `json:"flags"`
	Verdict  string   `json:"verdict"`
	Hostname string   `json:"hostname,omitempty"`
}

type EmailResult struct {
	Score   int      `json:"score"`
	Flags   []string `json:"flags"`
	Verdict string   `json:"verdict"`
	Domain  string   `json:"domain,omitempty"`
}

type TextResult struct {
	Score int      `json:"score"`
	Flags []string `json:"flags"`
}

// CompanyFlag carries a typed finding from the company-name analyzer.
// Type is one of pass, fail, warn, info.
type CompanyFlag struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Company trust levels, from best to worst.
const (
	TrustUnknown     = "unknown"
	TrustVerified    = "verified"
	TrustLikelyLegit = "likely-legit"
	TrustUnverified  = "unverified"
	TrustSuspicious  = "suspicious"
	TrustLikelyFake  = "likely-fake"
)

type CompanyResult struct {
	Score         int           `json:"score"`
	TrustLevel    string        `json:"trustLevel"`
	Flags         []CompanyFlag `json:"flags"`
	Suggestions   []string      `json:"suggestions"`
	IsVerified    bool          `json:"isVerified"`
	VerifiedMatch string        `json:"verifiedMatch,omitempty"`
}

// Classification is the human-facing verdict attached to a composite score.
type Classification struct {
	Label       string `json:"label"`
	CSSClass    string `json:"cssClass"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type Breakdown struct {
	Keywords KeywordResult `json:"keywords"`
	URL      URLResult     `json:"url"`
	Email    EmailResult   `json:"email"`
	Text     TextResult    `json:"text"`
	Company  CompanyResult `json:"company"`
}

type CompositeResult struct {
	Composite int            `json:"composite"`
	Verdict   Classification `json:"verdict"`
	Breakdown Breakdown      `json:"breakdown"`
}

// Input is one posting to score. JobText is required; the rest are optional
// and an empty string means not provided.
type Input struct {
	JobText        string `json:"jobText"`
	CompanyURL     string `json:"companyUrl,omitempty"`
	RecruiterEmail string `json:"recruiterEmail,omitempty"`
	CompanyName    string `json:"companyName,omitempty"`
}
