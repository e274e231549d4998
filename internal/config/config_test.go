package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  port: 9100
webscan:
  enabled: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	out, val := NormalizeAndValidate(cfg)
	if !val.OK() {
		t.Fatalf("unexpected errors: %v", val.Errors)
	}
	if out.App.Port != 9100 {
		t.Fatalf("port = %d, want 9100", out.App.Port)
	}
	if out.WebScan.TimeoutSeconds != 10 || out.WebScan.PerHostPerMinute != 6 || out.WebScan.MaxBodyKB != 512 {
		t.Fatalf("webscan defaults not applied: %+v", out.WebScan)
	}
	if out.Intel.TimeoutSeconds != 8 || out.Mail.PollSeconds != 300 || out.Reputation.RecentLimit != 6 {
		t.Fatalf("defaults not applied: intel=%+v mail=%+v rep=%+v", out.Intel, out.Mail, out.Reputation)
	}
}

func TestNormalizeDefaultPort(t *testing.T) {
	out, val := NormalizeAndValidate(Config{})
	if !val.OK() {
		t.Fatalf("empty config invalid: %v", val.Errors)
	}
	if out.App.Port != 8790 {
		t.Fatalf("port = %d, want 8790", out.App.Port)
	}
}

func TestValidatePortRange(t *testing.T) {
	var cfg Config
	cfg.App.Port = 70000
	_, val := NormalizeAndValidate(cfg)
	if val.OK() {
		t.Fatal("port 70000 accepted")
	}
}

func TestValidateExtraKeywordRules(t *testing.T) {
	var cfg Config
	cfg.Analysis.ExtraKeywordRules = []KeywordRule{
		{Pattern: "", Weight: 5, Label: "no pattern"},
		{Pattern: "crypto\\s*bonus", Weight: 0, Label: "no weight"},
		{Pattern: "ok", Weight: 5, Severity: "extreme", Label: "bad severity"},
	}
	_, val := NormalizeAndValidate(cfg)
	if len(val.Errors) != 3 {
		t.Fatalf("errors = %v, want 3 collected", val.Errors)
	}
}

func TestValidateMailRequirements(t *testing.T) {
	var cfg Config
	cfg.Mail.Enabled = true
	_, val := NormalizeAndValidate(cfg)
	if val.OK() {
		t.Fatal("mail.enabled without host/port/username/mailbox accepted")
	}
	joined := strings.Join(val.Errors, "\n")
	for _, want := range []string{"imap_host", "imap_port", "username", "mailbox"} {
		if !strings.Contains(joined, want) {
			t.Errorf("errors %v missing %s", val.Errors, want)
		}
	}
}

func TestNormalizeTrimsSubjectList(t *testing.T) {
	var cfg Config
	cfg.Mail.SearchSubjectAny = []string{" internship ", "", "Internship", "offer"}
	out, _ := NormalizeAndValidate(cfg)
	if len(out.Mail.SearchSubjectAny) != 2 {
		t.Fatalf("subjects = %v, want deduped pair", out.Mail.SearchSubjectAny)
	}
	if out.Mail.SearchSubjectAny[0] != "internship" || out.Mail.SearchSubjectAny[1] != "offer" {
		t.Fatalf("subjects = %v", out.Mail.SearchSubjectAny)
	}
}

func TestLowPollWarns(t *testing.T) {
	var cfg Config
	cfg.Mail.PollSeconds = 10
	_, val := NormalizeAndValidate(cfg)
	if !val.OK() {
		t.Fatalf("low poll should warn, not error: %v", val.Errors)
	}
	if len(val.Warnings) == 0 {
		t.Fatal("expected a warning for low poll interval")
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	var cfg Config
	cfg.App.Port = 9200
	cfg.WebScan.Enabled = true
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.App.Port != 9200 || !got.WebScan.Enabled {
		t.Fatalf("round trip lost fields: %+v", got)
	}

	// A second save keeps a .bak of the previous contents.
	cfg.App.Port = 9300
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("backup missing: %v", err)
	}
}
