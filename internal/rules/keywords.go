// Package rules holds the static rule tables the detection engine scores
// against: weighted keyword patterns, domain lists, the verified-company set
// and the known-scam database. Pure data, built once at startup and never
// mutated afterwards, so a single Set is safe to share across goroutines.
package rules

import "regexp"

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// KeywordRule is one weighted pattern in the keyword risk dictionary.
type KeywordRule struct {
	Pattern  *regexp.Regexp
	Weight   int // 1-30
	Severity Severity
	Label    string
}

func kw(expr string, weight int, sev Severity, label string) KeywordRule {
	return KeywordRule{
		Pattern:  regexp.MustCompile(`(?i)` + expr),
		Weight:   weight,
		Severity: sev,
		Label:    label,
	}
}

func defaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		// High-risk (weight 8-10)
		kw(`registration\s*fee`, 10, SeverityHigh, "Registration Fee"),
		kw(`pay\s*(upfront|advance|first)`, 10, SeverityHigh, "Upfront Payment"),
		kw(`wire\s*transfer`, 10, SeverityHigh, "Wire Transfer"),
		kw(`deposit.*?refundable`, 9, SeverityHigh, "Deposit Required"),
		kw(`guaranteed\s*(placement|job|internship|income|salary)`, 9, SeverityHigh, "Guaranteed Placement"),
		kw(`earn\s*\d{4,}`, 9, SeverityHigh, "Unrealistic Earnings"),
		kw(`no\s*experience\s*required`, 8, SeverityHigh, "No Experience Required"),
		kw(`urgent(ly)?[\s!]`, 8, SeverityHigh, "Urgency Tactics"),
		kw(`limited\s*(seats|slots|spots|time|offer)`, 8, SeverityHigh, "Artificial Scarcity"),
		kw(`send\s*(your\s*)?(aadhar|aadhaar|ssn|social\s*security|passport|bank\s*account)`, 10, SeverityHigh, "Personal Data Request"),
		kw(`work\s*from\s*home.*?(immediately|today|now)`, 8, SeverityHigh, "Immediate WFH Claim"),
		kw(`easy\s*money`, 9, SeverityHigh, "Easy Money Promise"),
		kw(`part[\s-]time.*?earn`, 7, SeverityHigh, "Part-time Earn Scheme"),
		kw(`google|amazon|microsoft\s+hiring\s+directly`, 8, SeverityHigh, "Fake Brand Claim"),

		// Medium-risk (weight 4-7)
		kw(`click\s*(here|now|this\s*link)`, 6, SeverityMedium, "Suspicious CTA"),
		kw(`apply\s*immediately`, 5, SeverityMedium, "Pressure Apply"),
		kw(`no\s*interview`, 6, SeverityMedium, "No Interview Required"),
		kw(`100%\s*(job|placement|success)`, 7, SeverityMedium, "100% Guarantee"),
		kw(`training\s*fee`, 7, SeverityMedium, "Training Fee"),
		kw(`security\s*deposit`, 7, SeverityMedium, "Security Deposit"),
		kw(`certificate\s*(program|course).*?fee`, 6, SeverityMedium, "Paid Certificate Scheme"),
		kw(`(whatsapp|telegram)\s*(group|us|number)`, 5, SeverityMedium, "Unofficial Contact Channel"),
		kw(`lakh(s)?\s*per\s*(month|year)`, 6, SeverityMedium, "Unrealistic Salary Claim"),
		kw(`stipend.*?lakh`, 6, SeverityMedium, "Inflated Stipend"),
		kw(`high\s*(commission|earning|salary)\s*(guarantee|assured)?`, 5, SeverityMedium, "High Earnings Claim"),
		kw(`recruitment\s*charge`, 6, SeverityMedium, "Recruitment Charge"),

		// Low-risk (weight 1-3)
		kw(`work\s*from\s*home`, 2, SeverityLow, "Work From Home"),
		kw(`free\s*laptop`, 3, SeverityLow, "Free Laptop Promise"),
		kw(`no\s*qualification`, 3, SeverityLow, "No Qualification"),
		kw(`flexible\s*hours`, 1, SeverityLow, "Flexible Hours"),
		kw(`be\s*your\s*own\s*boss`, 3, SeverityLow, "MLM Language"),
		kw(`refer\s*(and\s*)?earn`, 3, SeverityLow, "Referral Earn Scheme"),
		kw(`passive\s*income`, 3, SeverityLow, "Passive Income Promise"),
	}
}
