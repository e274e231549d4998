package detect

import (
	"testing"

	"internguard-engine/internal/rules"
)

func TestCheckKnownScamDBDomain(t *testing.T) {
	rs := rules.Default()
	hits := CheckKnownScamDB(rs, "jobs.quickjobs.co.in", "", "")
	if len(hits) != 1 || hits[0].Type != "domain" {
		t.Fatalf("hits = %v, want one domain hit", hits)
	}
	if hits[0].Severity != "high" {
		t.Fatalf("severity = %q, want high", hits[0].Severity)
	}
}

func TestCheckKnownScamDBCompany(t *testing.T) {
	rs := rules.Default()
	// Company names are compared with spaces stripped.
	hits := CheckKnownScamDB(rs, "", "Top MNC Group Services", "")
	if len(hits) != 1 || hits[0].Type != "company" {
		t.Fatalf("hits = %v, want one company hit", hits)
	}
}

func TestCheckKnownScamDBEmail(t *testing.T) {
	rs := rules.Default()
	hits := CheckKnownScamDB(rs, "", "", "internship@gmail.com")
	if len(hits) != 1 || hits[0].Type != "email" {
		t.Fatalf("hits = %v, want one email hit", hits)
	}
}

func TestCheckKnownScamDBOrderAndClean(t *testing.T) {
	rs := rules.Default()
	hits := CheckKnownScamDB(rs, "careers.quickjobs.co.in", "Earn Fast India", "hr.india@example.com")
	if len(hits) != 3 {
		t.Fatalf("hits = %v, want 3", hits)
	}
	want := []string{"domain", "company", "email"}
	for i, w := range want {
		if hits[i].Type != w {
			t.Fatalf("hits[%d].Type = %q, want %q", i, hits[i].Type, w)
		}
	}

	clean := CheckKnownScamDB(rs, "infosys.com", "Infosys", "careers@infosys.com")
	if clean == nil || len(clean) != 0 {
		t.Fatalf("clean lookup = %v, want empty non-nil slice", clean)
	}
}
