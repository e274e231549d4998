package mailscan

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	log "github.com/sirupsen/logrus"

	"internguard-engine/internal/config"
	"internguard-engine/internal/detect"
)

const (
	maxEmailsPerRun = 20
	runTimeout      = 25 * time.Second
)

// Finding is the detector's verdict on one scanned email.
type Finding struct {
	UID       uint32 `json:"uid"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	Composite int    `json:"composite"`
	Verdict   string `json:"verdict"`
}

// RunScanOnce fetches unseen mail, scores each message's text and sender
// through the detector and marks the batch \Seen. Suspicious and dangerous
// findings are returned; onFinding fires for each one as it is found.
func RunScanOnce(cfg config.Config, eng *detect.Engine, password string, onFinding func(Finding)) ([]Finding, error) {
	if !cfg.Mail.Enabled {
		return nil, nil
	}
	if cfg.Mail.IMAPHost == "" || cfg.Mail.Username == "" {
		return nil, errors.New("mail enabled but missing imap_host/username")
	}
	if password == "" {
		return nil, errors.New("missing IMAP password (Gmail requires an app password with 2FA)")
	}

	addr := cfg.Mail.IMAPHost
	if cfg.Mail.IMAPPort != 0 && !strings.Contains(addr, ":") {
		addr = fmt.Sprintf("%s:%d", addr, cfg.Mail.IMAPPort)
	} else if !strings.Contains(addr, ":") {
		addr = addr + ":993"
	}

	mailbox := cfg.Mail.Mailbox
	if mailbox == "" {
		mailbox = "INBOX"
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	c, err := dialAndLogin(ctx, addr, cfg.Mail.IMAPHost, cfg.Mail.Username, password)
	if err != nil {
		return nil, err
	}
	defer logoutAndClose(c)

	if _, err := c.Select(mailbox, nil).Wait(); err != nil {
		return nil, fmt.Errorf("imap select %q: %w", mailbox, err)
	}

	msgs, err := fetchUnseen(ctx, c, maxEmailsPerRun)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		return nil, nil
	}

	var findings []Finding
	processed := make([]imap.UID, 0, len(msgs))

	for _, m := range msgs {
		processed = append(processed, m.UID)

		subject := decodeRFC2047(m.Subject)
		if len(cfg.Mail.SearchSubjectAny) > 0 && !containsAnyCI(subject, cfg.Mail.SearchSubjectAny) {
			continue
		}

		body := extractBodyText(m.RawMessage)
		if strings.TrimSpace(body) == "" {
			continue
		}

		result := eng.Run(detect.Input{
			JobText:        subject + "\n\n" + body,
			RecruiterEmail: senderAddress(m.From),
		})

		if result.Verdict.Label == "SAFE" {
			continue
		}

		f := Finding{
			UID:       uint32(m.UID),
			From:      m.From,
			Subject:   subject,
			Date:      m.Date.Format("2006-01-02"),
			Composite: result.Composite,
			Verdict:   result.Verdict.Label,
		}
		findings = append(findings, f)

		log.WithFields(log.Fields{
			"from":      f.From,
			"composite": f.Composite,
			"verdict":   f.Verdict,
		}).Info("suspicious offer in mailbox")

		if onFinding != nil {
			onFinding(f)
		}
	}

	if len(processed) > 0 {
		if err := markSeen(c, processed); err != nil {
			return findings, fmt.Errorf("mark seen: %w", err)
		}
	}

	return findings, nil
}

func containsAnyCI(s string, any []string) bool {
	ls := strings.ToLower(s)
	for _, a := range any {
		if a == "" {
			continue
		}
		if strings.Contains(ls, strings.ToLower(a)) {
			return true
		}
	}
	return false
}

// senderAddress pulls the first bare address out of a From header.
func senderAddress(from string) string {
	from = strings.TrimSpace(from)
	if from == "" {
		return ""
	}
	if i := strings.IndexByte(from, ','); i >= 0 {
		from = from[:i]
	}
	if start := strings.IndexByte(from, '<'); start >= 0 {
		if end := strings.IndexByte(from, '>'); end > start {
			return strings.TrimSpace(from[start+1 : end])
		}
	}
	return strings.TrimSpace(from)
}
