package reputation

import (
	"fmt"
	"strings"
)

// nameMergeDistance is the maximum company-name edit distance for folding a
// user report into an existing record.
const nameMergeDistance = 3

// Credibility assigned to synthesized community reports.
const (
	credibilityWithProof    = 0.6
	credibilityWithoutProof = 0.4
)

// MergedDatabase deep-clones the seed set and folds every persisted user
// report in. A report joins an existing record when any identifier lines up
// (near-identical company name, exact domain, email, UPI id or phone);
// otherwise it becomes a new record. The merge is recomputed from scratch on
// every call, so two calls against the same store state produce structurally
// equal databases.
func MergedDatabase(seeds []ScamRecord, store ReportStore) ([]ScamRecord, error) {
	db := cloneRecords(seeds)

	userReports, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load user reports: %w", err)
	}

	for i, ur := range userReports {
		rec := findMergeTarget(db, ur)

		report := Report{
			Date:          ur.Date,
			Verified:      false,
			ProofUploaded: ur.ProofUploaded,
			Flags:         append([]string(nil), ur.Flags...),
			Credibility:   credibilityWithoutProof,
		}
		if ur.ProofUploaded {
			report.Credibility = credibilityWithProof
		}

		if rec != nil {
			rec.Reports = append(rec.Reports, report)
			if ur.UPIID != "" && !containsString(rec.UPIIDs, ur.UPIID) {
				rec.UPIIDs = append(rec.UPIIDs, ur.UPIID)
			}
			if ur.Email != "" && !containsString(rec.RecruiterEmails, ur.Email) {
				rec.RecruiterEmails = append(rec.RecruiterEmails, ur.Email)
			}
			if ur.Phone != "" && !containsString(rec.Phones, ur.Phone) {
				rec.Phones = append(rec.Phones, ur.Phone)
			}
			continue
		}

		name := ur.CompanyName
		if name == "" {
			name = "Unknown Company"
		}
		db = append(db, ScamRecord{
			// Deterministic id so repeated merges of the same store state
			// compare equal.
			ID:                fmt.Sprintf("user_%03d", i+1),
			CompanyName:       name,
			Domain:            ur.Domain,
			RecruiterEmails:   nonEmpty(ur.Email),
			Phones:            nonEmpty(ur.Phone),
			UPIIDs:            nonEmpty(ur.UPIID),
			DomainAgeDays:     nil,
			PsychManipulation: hasFlag(ur.Flags, "urgency_pressure"),
			Reports:           []Report{report},
		})
	}
	return db, nil
}

func findMergeTarget(db []ScamRecord, ur UserReport) *ScamRecord {
	for i := range db {
		rec := &db[i]
		if Distance(rec.CompanyName, ur.CompanyName) <= nameMergeDistance {
			return rec
		}
		if ur.Domain != "" && NormalizeDomain(rec.Domain) == NormalizeDomain(ur.Domain) {
			return rec
		}
		if ur.Email != "" && containsFold(rec.RecruiterEmails, ur.Email) {
			return rec
		}
		if ur.UPIID != "" && containsFold(rec.UPIIDs, ur.UPIID) {
			return rec
		}
		if ur.Phone != "" && containsString(rec.Phones, ur.Phone) {
			return rec
		}
	}
	return nil
}

func cloneRecords(seeds []ScamRecord) []ScamRecord {
	db := make([]ScamRecord, len(seeds))
	for i, s := range seeds {
		c := s
		c.RecruiterEmails = append([]string(nil), s.RecruiterEmails...)
		c.Phones = append([]string(nil), s.Phones...)
		c.UPIIDs = append([]string(nil), s.UPIIDs...)
		c.Reports = make([]Report, len(s.Reports))
		for j, r := range s.Reports {
			cr := r
			cr.Flags = append([]string(nil), r.Flags...)
			c.Reports[j] = cr
		}
		if s.DomainAgeDays != nil {
			v := *s.DomainAgeDays
			c.DomainAgeDays = &v
		}
		db[i] = c
	}
	return db
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}

func containsFold(xs []string, want string) bool {
	for _, x := range xs {
		if strings.EqualFold(x, want) {
			return true
		}
	}
	return false
}

func nonEmpty(s string) []string {
	if s == "" {
		return []string{}
	}
	return []string{s}
}
