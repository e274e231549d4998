package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults, trims list fields and collects
// everything wrong with the config instead of stopping at the first problem.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Mail.SearchSubjectAny = trimList(out.Mail.SearchSubjectAny)

	// ---- Defaults ----

	if out.App.Port == 0 {
		out.App.Port = 8790
	}
	if out.WebScan.TimeoutSeconds <= 0 {
		out.WebScan.TimeoutSeconds = 10
	}
	if out.WebScan.PerHostPerMinute <= 0 {
		out.WebScan.PerHostPerMinute = 6
	}
	if out.WebScan.MaxBodyKB <= 0 {
		out.WebScan.MaxBodyKB = 512
	}
	if out.Intel.TimeoutSeconds <= 0 {
		out.Intel.TimeoutSeconds = 8
	}
	if out.Mail.PollSeconds <= 0 {
		out.Mail.PollSeconds = 300
	}
	if out.Reputation.RecentLimit <= 0 {
		out.Reputation.RecentLimit = 6
	}

	// ---- Validation rules ----

	if out.App.Port < 1 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	for i, r := range out.Analysis.ExtraKeywordRules {
		if strings.TrimSpace(r.Pattern) == "" {
			res.addErr("analysis.extra_keyword_rules[%d].pattern is required", i)
		}
		if r.Weight <= 0 {
			res.addErr("analysis.extra_keyword_rules[%d].weight must be > 0", i)
		}
		switch r.Severity {
		case "high", "medium", "low", "":
		default:
			res.addErr("analysis.extra_keyword_rules[%d].severity must be high, medium or low", i)
		}
	}

	if out.Mail.PollSeconds < 30 {
		res.addWarn("mail.poll_seconds is very low (%d) and may cause rate limits.", out.Mail.PollSeconds)
	}

	if out.Mail.Enabled {
		if strings.TrimSpace(out.Mail.IMAPHost) == "" {
			res.addErr("mail.imap_host is required when mail.enabled=true")
		}
		if out.Mail.IMAPPort == 0 {
			res.addErr("mail.imap_port is required when mail.enabled=true")
		}
		if strings.TrimSpace(out.Mail.Username) == "" {
			res.addErr("mail.username is required when mail.enabled=true")
		}
		if strings.TrimSpace(out.Mail.Mailbox) == "" {
			res.addErr("mail.mailbox is required when mail.enabled=true")
		}
		if len(out.Mail.SearchSubjectAny) == 0 {
			res.addWarn("mail.search_subject_any is empty; the mailbox scan may match nothing.")
		}
	}

	return out, res
}
