package detect

import (
	"reflect"
	"testing"

	"internguard-engine/internal/rules"
)

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "SAFE"},
		{29, "SAFE"},
		{30, "SUSPICIOUS"},
		{59, "SUSPICIOUS"},
		{60, "SCAM"},
		{100, "SCAM"},
	}
	for _, c := range cases {
		if got := Classify(c.score); got.Label != c.want {
			t.Errorf("Classify(%d) = %q, want %q", c.score, got.Label, c.want)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	eng := NewEngine(rules.Default())
	in := Input{
		JobText:        "Part-time work from home, earn 50000 per month! Limited seats, apply immediately.",
		CompanyURL:     "http://quick-intern-jobs.xyz",
		RecruiterEmail: "hr@gmail.com",
		CompanyName:    "Quick Intern Solutions",
	}
	a := eng.Run(in)
	b := eng.Run(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same input produced different results:\n%+v\n%+v", a, b)
	}
}

func TestRunVerifiedCompanyZeroesSignal(t *testing.T) {
	eng := NewEngine(rules.Default())
	res := eng.Run(Input{
		JobText:     "Software engineering internship at our Bengaluru development center, six month program with mentorship.",
		CompanyName: "Tata Consultancy Services",
	})
	if !res.Breakdown.Company.IsVerified {
		t.Fatalf("company not verified: %+v", res.Breakdown.Company)
	}
	if res.Breakdown.Company.Score != 0 {
		t.Fatalf("verified company score = %d, want 0", res.Breakdown.Company.Score)
	}
}

func TestRunSafePosting(t *testing.T) {
	eng := NewEngine(rules.Default())
	res := eng.Run(Input{
		JobText: "We are hiring a software engineering intern for our Pune office. " +
			"The role covers backend development in Go, code review participation and " +
			"working with senior engineers on production services. Applicants should be " +
			"in their third year of an engineering degree with solid fundamentals in " +
			"data structures. The internship runs for six months with a competitive stipend " +
			"and a possibility of a full-time offer based on performance during the term.",
		CompanyURL:     "https://infosys.com/careers",
		RecruiterEmail: "careers@infosys.com",
		CompanyName:    "Infosys Limited",
	})
	if res.Verdict.Label != "SAFE" {
		t.Fatalf("verdict = %q (composite %d), want SAFE", res.Verdict.Label, res.Composite)
	}
	if res.Composite != 0 {
		t.Fatalf("composite = %d, want 0\nbreakdown: %+v", res.Composite, res.Breakdown)
	}
}

func TestRunScamPostingEscalatedByScamDB(t *testing.T) {
	eng := NewEngine(rules.Default())
	res := eng.Run(Input{
		JobText: "URGENT! Limited seats. Pay registration fee via wire transfer and " +
			"send your Aadhaar card today. Guaranteed placement, 100% job assured, " +
			"easy money, no experience required!!! WhatsApp us immediately.",
		CompanyURL:     "http://bit.ly/job123",
		RecruiterEmail: "hr@gmail.com",
		CompanyName:    "Top MNC Group",
	})
	if res.Verdict.Label == "SAFE" {
		t.Fatalf("obvious scam classified SAFE (composite %d)", res.Composite)
	}
	if res.Breakdown.Keywords.Score != 100 {
		t.Fatalf("keyword score = %d, want saturated 100", res.Breakdown.Keywords.Score)
	}

	before := res.Composite
	hits := eng.ApplyScamDBHits(&res, res.Breakdown.URL.Hostname, "Top MNC Group", "hr@gmail.com")
	if len(hits) != 1 || hits[0].Type != "company" {
		t.Fatalf("hits = %v, want one company hit", hits)
	}
	if res.Composite <= before {
		t.Fatalf("composite did not rise after known-scam hit: %d -> %d", before, res.Composite)
	}
	if res.Verdict.Label != "SCAM" {
		t.Fatalf("verdict = %q (composite %d), want SCAM", res.Verdict.Label, res.Composite)
	}
}

func TestApplyScamDBHitsBoostsURL(t *testing.T) {
	eng := NewEngine(rules.Default())
	res := eng.Run(Input{
		JobText:    "Exciting internship opportunity, apply via the portal below.",
		CompanyURL: "https://quickjobs.co.in/apply",
	})
	urlBefore := res.Breakdown.URL.Score
	hits := eng.ApplyScamDBHits(&res, res.Breakdown.URL.Hostname, "", "")
	if len(hits) != 1 || hits[0].Type != "domain" {
		t.Fatalf("hits = %v, want one domain hit", hits)
	}
	if res.Breakdown.URL.Score != urlBefore+20 {
		t.Fatalf("url score = %d, want %d", res.Breakdown.URL.Score, urlBefore+20)
	}
	if !hasStringFlag(res.Breakdown.URL.Flags, "Domain matches known scam database entry") {
		t.Fatalf("url flags %v missing scam-db flag", res.Breakdown.URL.Flags)
	}
}

func TestApplyScamDBHitsNoMatchLeavesResult(t *testing.T) {
	eng := NewEngine(rules.Default())
	res := eng.Run(Input{JobText: "Plain posting", CompanyURL: "https://example.com"})
	before := res
	hits := eng.ApplyScamDBHits(&res, "example.com", "Example Corp", "hr@example.com")
	if len(hits) != 0 {
		t.Fatalf("hits = %v, want none", hits)
	}
	if !reflect.DeepEqual(res, before) {
		t.Fatalf("result mutated without hits:\n%+v\n%+v", res, before)
	}
}
