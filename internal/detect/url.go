package detect

import (
	"net/url"
	"regexp"
	"strings"

	"internguard-engine/internal/rules"
)

var (
	ipHostRe       = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
	hostDigitsRe   = regexp.MustCompile(`\d{3,}`)
	trailingPortRe = regexp.MustCompile(`\d+\.\d+$`)
	randomLabelRe  = regexp.MustCompile(`[a-z]+\d+[a-z]+|[0-9][a-z]{1,3}[0-9]`)
)

// AnalyzeURL scores a URL-like string. The protocol is optional; http:// is
// assumed for parsing, separately from the HTTPS check. Unparsable input
// degrades to a fixed score of 15 rather than an error.
func AnalyzeURL(rs *rules.Set, rawURL string) URLResult {
	if strings.TrimSpace(rawURL) == "" {
		return URLResult{Score: 0, Flags: []string{}, Verdict: VerdictNotProvided}
	}

	var flags []string
	score := 0
	raw := strings.ToLower(strings.TrimSpace(rawURL))

	withProto := raw
	if !strings.HasPrefix(raw, "http") {
		withProto = "http://" + raw
	}
	parsed, err := url.Parse(withProto)
	if err != nil || parsed.Hostname() == "" {
		return URLResult{Score: 15, Flags: []string{"Invalid URL format"}, Verdict: VerdictSuspicious}
	}
	hostname := parsed.Hostname()

	if !strings.HasPrefix(raw, "https") {
		flags = append(flags, "Not using HTTPS")
		score += 15
	}
	if ipHostRe.MatchString(hostname) {
		flags = append(flags, "IP-based URL (no domain name)")
		score += 25
	}
	for _, s := range rs.URLShorteners {
		if strings.Contains(hostname, s) {
			flags = append(flags, "URL shortener detected")
			score += 20
			break
		}
	}
	for _, t := range rs.SuspiciousTLDs {
		if strings.HasSuffix(hostname, t) {
			parts := strings.Split(hostname, ".")
			flags = append(flags, "Suspicious top-level domain: "+parts[len(parts)-1])
			score += 20
			break
		}
	}

	parts := strings.Split(hostname, ".")
	if len(parts) > 4 {
		flags = append(flags, "Excessive subdomains")
		score += 10
	}
	if hostDigitsRe.MatchString(trailingPortRe.ReplaceAllString(hostname, "")) {
		flags = append(flags, "Numeric-heavy domain name")
		score += 10
	}
	if strings.Count(hostname, "-") > 2 {
		flags = append(flags, "Excessive hyphens in domain")
		score += 8
	}

	// Short label mixing letters and digits, e.g. "x9z7" in x9z7.xyz.
	var domainLabel string
	if len(parts) >= 2 {
		domainLabel = parts[len(parts)-2]
	}
	if len(domainLabel) < 8 && randomLabelRe.MatchString(domainLabel) {
		flags = append(flags, "Random-looking domain name")
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return URLResult{Score: score, Flags: nonNil(flags), Verdict: urlVerdict(score), Hostname: hostname}
}

func urlVerdict(score int) string {
	switch {
	case score == 0:
		return VerdictClean
	case score < 25:
		return VerdictLowRisk
	case score < 50:
		return VerdictSuspicious
	default:
		return VerdictDangerous
	}
}

func nonNil(flags []string) []string {
	if flags == nil {
		return []string{}
	}
	return flags
}
