package reputation

import "testing"

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"same", "same", 0},
		{"", "abc", 3},
		{"TechVision", "techvision", 0}, // case-insensitive
		{"  padded ", "padded", 0},      // trimmed
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
		if got := Distance(c.b, c.a); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d (symmetry)", c.b, c.a, got, c.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("acme", "acme"); got != 1 {
		t.Fatalf("identical strings = %v, want 1", got)
	}
	if got := Similarity("", ""); got != 1 {
		t.Fatalf("empty strings = %v, want 1", got)
	}
	if got := Similarity("abcd", "wxyz"); got != 0 {
		t.Fatalf("disjoint strings = %v, want 0", got)
	}
	// distance 3 over max length 7
	got := Similarity("kitten", "sitting")
	want := 1 - 3.0/7.0
	if got != want {
		t.Fatalf("Similarity(kitten, sitting) = %v, want %v", got, want)
	}
}

func TestNormalizeDomain(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://www.TechVision-Internships.com/careers", "techvision-internships.com"},
		{"http://foo.in", "foo.in"},
		{"www.foo.in", "foo.in"},
		{"foo.in/path/x", "foo.in"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeDomain(c.in); got != c.want {
			t.Errorf("NormalizeDomain(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func matchFixture() *ScamRecord {
	return &ScamRecord{
		ID:              "r1",
		CompanyName:     "TechVision Pvt Ltd",
		Domain:          "techvision-internships.com",
		RecruiterEmails: []string{"hr@techvision-internships.com"},
		Phones:          []string{"+91 98765 43210"},
		UPIIDs:          []string{"techvision@paytm"},
	}
}

func TestMatchEntryPriority(t *testing.T) {
	rec := matchFixture()
	cases := []struct {
		query string
		typ   string
		score float64
	}{
		{"https://www.techvision-internships.com/apply", MatchDomain, 1},
		{"techvision-internships.com", MatchDomain, 1},
		{"hr@techvision-internships.com", MatchEmail, 1},
		{"techvision@paytm", MatchUPI, 1},
		{"9876543210", MatchPhone, 1},
		{"TechVision Pvt Ltd", MatchCompanyExact, 1},
		{"techvision pvt", MatchCompanyPartial, 0.9},
		{"TechVison Pvt Ltd", MatchFuzzy, 0}, // score checked separately
	}
	for _, c := range cases {
		m := MatchEntry(rec, c.query)
		if !m.Matched {
			t.Errorf("%q: no match", c.query)
			continue
		}
		if m.Type != c.typ {
			t.Errorf("%q: type = %q, want %q", c.query, m.Type, c.typ)
		}
		if c.score != 0 && m.Score != c.score {
			t.Errorf("%q: score = %v, want %v", c.query, m.Score, c.score)
		}
	}
}

func TestMatchEntryFuzzyThreshold(t *testing.T) {
	rec := &ScamRecord{CompanyName: "NextGen Career Hub"}
	m := MatchEntry(rec, "NextGen Carrer Hub") // one transposition-ish typo
	if !m.Matched || m.Type != MatchFuzzy {
		t.Fatalf("typo query: %+v, want fuzzy match", m)
	}
	if m.Score < FuzzyThreshold {
		t.Fatalf("fuzzy score %v below threshold", m.Score)
	}
	if m := MatchEntry(rec, "completely different name"); m.Matched {
		t.Fatalf("unrelated query matched: %+v", m)
	}
}

func TestMatchEntryEmptyQuery(t *testing.T) {
	if m := MatchEntry(matchFixture(), "   "); m.Matched {
		t.Fatalf("blank query matched: %+v", m)
	}
}

func TestMatchEntryPartialDomain(t *testing.T) {
	m := MatchEntry(matchFixture(), "techvision-internships")
	if !m.Matched {
		t.Fatal("partial domain did not match")
	}
	if m.Type != MatchDomainPartial || m.Score != 0.85 {
		t.Fatalf("got %+v, want domain_partial/0.85", m)
	}
}
