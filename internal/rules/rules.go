package rules

import (
	"fmt"
	"regexp"
)

// Set bundles every rule table the analyzers need. Build one with Default at
// startup and pass it by reference; none of the analyzers mutate it.
type Set struct {
	Keywords                  []KeywordRule
	SuspiciousTLDs            []string
	URLShorteners             []string
	FreeEmailProviders        []string
	VerifiedCompanies         []string
	OfficialDomainPatterns    []*regexp.Regexp
	SuspiciousCompanyPatterns []CompanyPattern
	ScamDB                    ScamDB
}

func Default() *Set {
	return &Set{
		Keywords:                  defaultKeywordRules(),
		SuspiciousTLDs:            defaultSuspiciousTLDs(),
		URLShorteners:             defaultURLShorteners(),
		FreeEmailProviders:        defaultFreeEmailProviders(),
		VerifiedCompanies:         defaultVerifiedCompanies(),
		OfficialDomainPatterns:    defaultOfficialDomainPatterns(),
		SuspiciousCompanyPatterns: defaultSuspiciousCompanyPatterns(),
		ScamDB:                    defaultScamDB(),
	}
}

// CompileKeyword builds a KeywordRule from config-supplied parts. Patterns are
// matched case-insensitively like the built-in dictionary.
func CompileKeyword(expr string, weight int, severity, label string) (KeywordRule, error) {
	if label == "" {
		return KeywordRule{}, fmt.Errorf("keyword rule %q: label is required", expr)
	}
	if weight < 1 || weight > 30 {
		return KeywordRule{}, fmt.Errorf("keyword rule %q: weight %d out of range 1..30", label, weight)
	}
	sev := Severity(severity)
	switch sev {
	case SeverityHigh, SeverityMedium, SeverityLow:
	case "":
		sev = SeverityMedium
	default:
		return KeywordRule{}, fmt.Errorf("keyword rule %q: unknown severity %q", label, severity)
	}
	re, err := regexp.Compile(`(?i)` + expr)
	if err != nil {
		return KeywordRule{}, fmt.Errorf("keyword rule %q: %w", label, err)
	}
	return KeywordRule{Pattern: re, Weight: weight, Severity: sev, Label: label}, nil
}
