// Package intel gathers external signals about a posting's domain: whois
// registration age and urlscan.io scan history.
package intel

import (
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
)

// DomainAge is the whois view of a domain's registration.
type DomainAge struct {
	Days      int    `json:"days"`
	CreatedOn string `json:"createdOn,omitempty"`
	UpdatedOn string `json:"updatedOn,omitempty"`
	Known     bool   `json:"known"`
}

var whoisLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// WhoisDomainAge looks up the domain's registration age in days. Registrars
// that refuse subdomains fall back to the parent domain. Failures report
// Known=false rather than an error; domain age is a bonus signal, never a
// prerequisite.
func WhoisDomainAge(domain string) DomainAge {
	raw, err := whois.Whois(domain)
	if err != nil {
		return DomainAge{}
	}

	p, err := parser.Parse(raw)
	if err != nil || p.Domain == nil {
		parts := strings.Split(domain, ".")
		if len(parts) > 2 {
			return WhoisDomainAge(strings.Join(parts[1:], "."))
		}
		return DomainAge{}
	}

	created := parseWhoisDate(p.Domain.CreatedDate)
	if created.IsZero() {
		return DomainAge{}
	}

	return DomainAge{
		Days:      int(time.Since(created).Hours() / 24),
		CreatedOn: created.Format("2006-01-02"),
		UpdatedOn: formatWhoisDate(p.Domain.UpdatedDate),
		Known:     true,
	}
}

func parseWhoisDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, l := range whoisLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatWhoisDate(s string) string {
	t := parseWhoisDate(s)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
