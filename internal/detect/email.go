package detect

import (
	"regexp"
	"strings"

	"internguard-engine/internal/rules"
)

var (
	emailFormatRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	alnumOnlyRe   = regexp.MustCompile(`[^a-z0-9]`)
)

// AnalyzeEmail scores a recruiter email, cross-checking the domain against
// the company name when one is given. Addresses on known official domains
// pass outright. Malformed addresses degrade to a fixed score of 20.
func AnalyzeEmail(rs *rules.Set, email, companyName string) EmailResult {
	if strings.TrimSpace(email) == "" {
		return EmailResult{Score: 0, Flags: []string{}, Verdict: VerdictNotProvided}
	}

	var flags []string
	score := 0
	e := strings.ToLower(strings.TrimSpace(email))

	if !emailFormatRe.MatchString(e) {
		return EmailResult{Score: 20, Flags: []string{"Invalid email format"}, Verdict: VerdictSuspicious}
	}
	domain := e[strings.LastIndex(e, "@")+1:]

	for _, p := range rs.OfficialDomainPatterns {
		if p.MatchString(domain) {
			return EmailResult{Score: 0, Flags: []string{}, Verdict: VerdictClean, Domain: domain}
		}
	}

	for _, p := range rs.FreeEmailProviders {
		if domain == p {
			flags = append(flags, "Corporate contact using free email ("+domain+")")
			score += 25
			break
		}
	}

	// Loose mismatch heuristic: compare the first four characters of the
	// normalized company name and the domain's first label, both directions.
	if strings.TrimSpace(companyName) != "" {
		simpleCo := alnumOnlyRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(companyName)), "")
		simpleDomain := alnumOnlyRe.ReplaceAllString(strings.SplitN(domain, ".", 2)[0], "")
		if len(simpleCo) > 3 &&
			!strings.Contains(simpleDomain, prefix4(simpleCo)) &&
			!strings.Contains(simpleCo, prefix4(simpleDomain)) {
			flags = append(flags, "Recruiter email domain doesn't match company name")
			score += 15
		}
	}

	for _, t := range rs.SuspiciousTLDs {
		if strings.HasSuffix(domain, t) {
			flags = append(flags, "Suspicious email domain TLD")
			score += 20
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return EmailResult{Score: score, Flags: nonNil(flags), Verdict: emailVerdict(score), Domain: domain}
}

func emailVerdict(score int) string {
	switch {
	case score == 0:
		return VerdictClean
	case score < 20:
		return VerdictLowRisk
	case score < 40:
		return VerdictSuspicious
	default:
		return VerdictDangerous
	}
}

func prefix4(s string) string {
	if len(s) > 4 {
		return s[:4]
	}
	return s
}
