package detect

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"internguard-engine/internal/rules"
)

var (
	companyNormRe      = regexp.MustCompile(`[^a-z0-9\s&]`)
	multiSpaceRe       = regexp.MustCompile(`\s+`)
	shortAcronymRe     = regexp.MustCompile(`^[A-Z]{2,5}$`)
	registeredSuffixRe = regexp.MustCompile(`(?i)\b(pvt\.?\s*ltd|private limited|public limited|llp|llc|incorporated|corp|plc|limited)\b`)
	nameDigitsRe       = regexp.MustCompile(`\d{3,}`)
	indianEntityRe     = regexp.MustCompile(`(?i)india|pvt|ltd`)
)

// AnalyzeCompanyName estimates how trustworthy a company name looks: verified
// names earn a trust bonus, generic agency or impersonation patterns add
// penalties, and structural oddities (length, caps, digits, missing entity
// suffix) add smaller ones. The returned suggestions are registry and review
// search links for the caller to render; they never affect the score.
func AnalyzeCompanyName(rs *rules.Set, companyName string) CompanyResult {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return CompanyResult{TrustLevel: TrustUnknown, Flags: []CompanyFlag{}, Suggestions: []string{}}
	}

	nameLower := multiSpaceRe.ReplaceAllString(companyNormRe.ReplaceAllString(strings.ToLower(name), ""), " ")
	var flags []CompanyFlag
	var suggestions []string
	score := 0

	var isVerified bool
	var verifiedMatch string
	for _, company := range rs.VerifiedCompanies {
		if strings.Contains(nameLower, company) || strings.Contains(company, nameLower) {
			isVerified = true
			verifiedMatch = company
			break
		}
	}
	if isVerified {
		score -= 20
		flags = append(flags, CompanyFlag{Type: "pass",
			Text: fmt.Sprintf("Matches verified company %q, listed in the MNC/startup database", verifiedMatch)})
	}

	for _, p := range rs.SuspiciousCompanyPatterns {
		if p.Pattern.MatchString(name) {
			score += p.Weight
			flags = append(flags, CompanyFlag{Type: "fail", Text: fmt.Sprintf("%s: %q", p.Label, name)})
		}
	}

	words := strings.Fields(name)
	if len(words) == 1 && len(name) < 5 {
		score += 10
		flags = append(flags, CompanyFlag{Type: "warn",
			Text: fmt.Sprintf("Very short company name (%d chars), likely incomplete or fake", len(name))})
	}
	if len(name) > 80 {
		score += 5
		flags = append(flags, CompanyFlag{Type: "warn", Text: "Unusually long company name"})
	}

	if name == strings.ToUpper(name) && len(name) > 6 && !shortAcronymRe.MatchString(name) {
		score += 8
		flags = append(flags, CompanyFlag{Type: "warn", Text: "All-caps name may indicate an unregistered or informal entity"})
	}

	if registeredSuffixRe.MatchString(name) {
		flags = append(flags, CompanyFlag{Type: "info",
			Text: "Has registered entity suffix (Pvt Ltd/LLP/Corp), check MCA registry for confirmation"})
		suggestions = append(suggestions, "Verify on MCA21 Portal: https://www.mca.gov.in/mcafoportal/viewCompanyMasterData.do")
	} else if !isVerified {
		score += 8
		flags = append(flags, CompanyFlag{Type: "warn", Text: "No registered entity suffix, may not be a registered company"})
		suggestions = append(suggestions, `Legitimate companies typically have "Pvt Ltd", "LLP", or "Ltd" in their name`)
	}

	if nameDigitsRe.MatchString(name) && !isVerified {
		score += 6
		flags = append(flags, CompanyFlag{Type: "warn", Text: "Company name contains excessive numbers, uncommon for registered firms"})
	}

	firstWord := strings.ToLower(words[0])
	suggestions = append(suggestions,
		"Search on MCA: https://www.mca.gov.in/mcafoportal/viewCompanyMasterData.do",
		"LinkedIn search: https://www.linkedin.com/company/"+url.QueryEscape(firstWord),
		`Google: https://www.google.com/search?q="`+url.QueryEscape(name)+`" site review scam`,
		"Glassdoor: https://www.glassdoor.co.in/Search/results.htm?keyword="+url.QueryEscape(name),
	)
	if indianEntityRe.MatchString(name) {
		suggestions = append(suggestions,
			"Startup India: https://www.startupindia.gov.in/content/sih/en/search.html#q="+url.QueryEscape(name))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return CompanyResult{
		Score:         score,
		TrustLevel:    trustLevel(isVerified, score),
		Flags:         flags,
		Suggestions:   suggestions,
		IsVerified:    isVerified,
		VerifiedMatch: verifiedMatch,
	}
}

func trustLevel(isVerified bool, score int) string {
	switch {
	case isVerified:
		return TrustVerified
	case score <= 10:
		return TrustLikelyLegit
	case score <= 30:
		return TrustUnverified
	case score <= 55:
		return TrustSuspicious
	default:
		return TrustLikelyFake
	}
}
