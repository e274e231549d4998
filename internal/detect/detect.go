package detect

import (
	"math"

	"internguard-engine/internal/rules"
)

// Composite blend weights. They sum to 1.0.
const (
	weightKeywords = 0.35
	weightURL      = 0.18
	weightEmail    = 0.18
	weightText     = 0.18
	weightCompany  = 0.11
)

// Engine runs the five signal analyzers and blends their scores. It holds
// only the immutable rule set, so one Engine serves concurrent callers.
type Engine struct {
	Rules *rules.Set
}

func NewEngine(rs *rules.Set) *Engine {
	return &Engine{Rules: rs}
}

// Run analyzes one posting. The analyzers are independent; a verified
// company zeroes the company signal before blending.
func (e *Engine) Run(in Input) CompositeResult {
	res := CompositeResult{
		Breakdown: Breakdown{
			Keywords: AnalyzeKeywords(e.Rules, in.JobText),
			URL:      AnalyzeURL(e.Rules, in.CompanyURL),
			Email:    AnalyzeEmail(e.Rules, in.RecruiterEmail, in.CompanyName),
			Text:     AnalyzeTextPatterns(in.JobText),
			Company:  AnalyzeCompanyName(e.Rules, in.CompanyName),
		},
	}
	if res.Breakdown.Company.IsVerified {
		res.Breakdown.Company.Score = 0
	}
	e.Rescore(&res)
	return res
}

// Rescore recomputes the composite and verdict from the breakdown scores.
// Callers that amend a signal after the fact (scam-DB hits, website scan
// results) must call this rather than patching the composite incrementally.
func (e *Engine) Rescore(res *CompositeResult) {
	b := &res.Breakdown
	composite := int(math.Round(
		float64(b.Keywords.Score)*weightKeywords +
			float64(b.URL.Score)*weightURL +
			float64(b.Email.Score)*weightEmail +
			float64(b.Text.Score)*weightText +
			float64(b.Company.Score)*weightCompany))
	if composite > 100 {
		composite = 100
	}
	if composite < 0 {
		composite = 0
	}
	res.Composite = composite
	res.Verdict = Classify(composite)
}

// ApplyScamDBHits boosts the URL signal by 20 points per known-scam hit and
// rescores the composite. The returned hits are the matcher's output for
// display.
func (e *Engine) ApplyScamDBHits(res *CompositeResult, hostname, companyName, email string) []ScamDBHit {
	hits := CheckKnownScamDB(e.Rules, hostname, companyName, email)
	for _, hit := range hits {
		res.Breakdown.URL.Score += 20
		if res.Breakdown.URL.Score > 100 {
			res.Breakdown.URL.Score = 100
		}
		res.Breakdown.URL.Flags = append(res.Breakdown.URL.Flags, hit.Text)
	}
	if len(hits) > 0 {
		res.Breakdown.URL.Verdict = urlVerdict(res.Breakdown.URL.Score)
		e.Rescore(res)
	}
	return hits
}

// Classify maps a composite score to its verdict band: 60 and above is SCAM,
// 30 and above is SUSPICIOUS, anything lower is SAFE.
func Classify(score int) Classification {
	switch {
	case score >= 60:
		return Classification{
			Label: "SCAM", CSSClass: "scam", Icon: "🚨", Color: "#ef4444",
			Description: "High probability of fraud. Do NOT apply or share any personal information.",
		}
	case score >= 30:
		return Classification{
			Label: "SUSPICIOUS", CSSClass: "suspicious", Icon: "⚠️", Color: "#f59e0b",
			Description: "Several red flags detected. Research this opportunity thoroughly before proceeding.",
		}
	default:
		return Classification{
			Label: "SAFE", CSSClass: "safe", Icon: "✅", Color: "#10b981",
			Description: "Appears legitimate. Always verify independently before sharing personal details.",
		}
	}
}
