package reputation

import "math"

// Report contribution weights.
const (
	verifiedReportPoints   = 10
	unverifiedReportPoints = 3
	proofPoints            = 20
	upiFlagPoints          = 15
	newDomainBonus         = 25 // domain younger than 30 days
	psychManipulationBonus = 30
	defaultCredibility     = 0.5
)

// ComputeScore sums credibility-weighted report contributions plus the flat
// domain-age and manipulation bonuses. Deliberately unclamped: a heavily
// reported record can exceed 100.
func ComputeScore(rec *ScamRecord) int {
	var score float64
	for _, r := range rec.Reports {
		weight := r.Credibility
		if weight == 0 {
			weight = defaultCredibility
		}
		if r.Verified {
			score += verifiedReportPoints * weight
		} else {
			score += unverifiedReportPoints * weight
		}
		if r.ProofUploaded {
			score += proofPoints * weight
		}
		if hasFlag(r.Flags, "upi_transfer") {
			score += upiFlagPoints * weight
		}
	}
	if rec.DomainAgeDays != nil && *rec.DomainAgeDays < 30 {
		score += newDomainBonus
	}
	if rec.PsychManipulation {
		score += psychManipulationBonus
	}
	return int(math.Round(score))
}

// Classification buckets a reputation score.
type Classification struct {
	Label      string `json:"label"`
	Class      string `json:"cls"`
	Confidence int    `json:"confidence"`
}

// Classify maps a reputation score into Safe, Suspicious or Scam Likely.
func Classify(score int) Classification {
	switch {
	case score <= 30:
		conf := score
		if conf > 30 {
			conf = 30
		}
		return Classification{Label: "Safe", Class: "safe", Confidence: conf}
	case score <= 70:
		return Classification{Label: "Suspicious", Class: "suspicious", Confidence: score}
	default:
		conf := score
		if conf > 99 {
			conf = 99
		}
		return Classification{Label: "Scam Likely", Class: "scam", Confidence: conf}
	}
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}
