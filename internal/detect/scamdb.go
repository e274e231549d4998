package detect

import (
	"strings"

	"internguard-engine/internal/rules"
)

// ScamDBHit is one match against the known-scam tables.
type ScamDBHit struct {
	Type     string `json:"type"` // domain, company or email
	Text     string `json:"text"`
	Severity string `json:"severity"`
}

// CheckKnownScamDB looks the hostname, company name and email up in the
// static known-scam tables. Any argument may be empty. Hits are ordered
// domain, company, email.
func CheckKnownScamDB(rs *rules.Set, hostname, companyName, email string) []ScamDBHit {
	hits := []ScamDBHit{}
	h := strings.ToLower(hostname)
	co := strings.ReplaceAll(strings.ToLower(companyName), " ", "")
	em := strings.ToLower(email)

	for _, d := range rs.ScamDB.Domains {
		if strings.Contains(h, d) {
			hits = append(hits, ScamDBHit{Type: "domain", Text: "Domain matches known scam database entry", Severity: "high"})
			break
		}
	}
	if co != "" {
		for _, k := range rs.ScamDB.CompanyKeywords {
			if strings.Contains(co, k) {
				hits = append(hits, ScamDBHit{Type: "company", Text: "Company name matches known scam pattern", Severity: "high"})
				break
			}
		}
	}
	if em != "" {
		for _, p := range rs.ScamDB.EmailPatterns {
			if p.MatchString(em) {
				hits = append(hits, ScamDBHit{Type: "email", Text: "Recruiter email matches known scam pattern", Severity: "high"})
				break
			}
		}
	}
	return hits
}
