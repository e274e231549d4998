// Package reputation implements the community scam-reputation engine: fuzzy
// lookup of companies, domains, emails, UPI ids and phones against a seeded
// record set merged with user-submitted reports, credibility-weighted
// scoring, report-surge detection and cluster analysis.
package reputation

import "time"

// Report is one submission against a record. Reports are append-only; a
// record's list only ever grows.
type Report struct {
	Date          string   `json:"date"` // ISO date, YYYY-MM-DD
	Verified      bool     `json:"verified"`
	ProofUploaded bool     `json:"proofUploaded"`
	Flags         []string `json:"flags"`
	Credibility   float64  `json:"credibility"` // 0..1
}

// ScamRecord is one company/operation in the reputation database.
type ScamRecord struct {
	ID                string   `json:"id"`
	CompanyName       string   `json:"companyName"`
	Domain            string   `json:"domain"`
	RecruiterEmails   []string `json:"recruiterEmails"`
	Phones            []string `json:"phones"`
	UPIIDs            []string `json:"upiIds"`
	DomainAgeDays     *int     `json:"domainAgeDays"` // nil when unknown
	PsychManipulation bool     `json:"psychManipulation"`
	Reports           []Report `json:"reports"`
	Cluster           string   `json:"cluster,omitempty"`
}

// UserReport is the shape persisted by the report store, one entry per
// community submission.
type UserReport struct {
	CompanyName   string   `json:"companyName"`
	Domain        string   `json:"domain"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	UPIID         string   `json:"upiId"`
	Flags         []string `json:"flags"`
	ProofUploaded bool     `json:"proofUploaded"`
	Description   string   `json:"description"`
	Date          string   `json:"date"` // ISO date, YYYY-MM-DD
}

// ReportStore persists user submissions. Load returns newest first; Append
// prepends and the implementation caps retention (200 entries).
type ReportStore interface {
	Load() ([]UserReport, error)
	Append(UserReport) error
}

// FlagLabels maps report flag ids to display labels.
var FlagLabels = map[string]string{
	"upfront_payment":   "Upfront Payment Demanded",
	"upi_transfer":      "UPI Transfer Requested",
	"fake_offer_letter": "Fake Offer Letter",
	"impersonation":     "Impersonating Known Company",
	"aadhaar_request":   "Aadhaar / PAN Collected",
	"urgency_pressure":  "Urgency / Pressure Tactics",
	"bank_details":      "Bank Details Collected",
	"whatsapp_only":     "WhatsApp/Telegram Only Contact",
}

// DefaultReferenceDate anchors the surge-detection windows so seeded data
// stays reproducible.
var DefaultReferenceDate = time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }
