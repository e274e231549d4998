// Package mailscan polls an IMAP mailbox for forwarded job offers and runs
// each unseen message through the fraud detector.
package mailscan

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

// Message is the slice of an email the scanner needs. RawMessage is the full
// RFC822 bytes, fetched with BODY.PEEK[] so the fetch itself never marks the
// message \Seen.
type Message struct {
	UID        imap.UID
	From       string
	Subject    string
	Date       time.Time
	RawMessage []byte
}

func tlsConfigFor(host string) *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: host,
	}
}

func dialAndLogin(ctx context.Context, addr, host, username, password string) (*imapclient.Client, error) {
	if addr == "" {
		return nil, errors.New("imap addr is required")
	}
	if username == "" || password == "" {
		return nil, errors.New("imap username/password is required")
	}

	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: tlsConfigFor(host),
	})
	if err != nil {
		return nil, fmt.Errorf("imap dial tls: %w", err)
	}

	// Best-effort close on context cancel.
	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(username, password).Wait(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("imap login: %w", err)
	}

	return c, nil
}

// fetchUnseen pulls up to max unseen messages, newest first, with envelope
// and full raw bytes.
func fetchUnseen(ctx context.Context, c *imapclient.Client, max int) ([]Message, error) {
	if c == nil {
		return nil, errors.New("imap client is nil")
	}
	if max <= 0 {
		max = 20
	}

	// skip anything older than 3 months
	cutoff := time.Now().AddDate(0, -3, 0)

	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
		Since:   cutoff,
	}

	searchData, err := c.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap uid search unseen: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return []Message{}, nil
	}

	// newest first
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}
	if len(uids) > max {
		uids = uids[:max]
	}

	uidSet := imap.UIDSetNum(uids...)

	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true,
	}

	fetchOptions := &imap.FetchOptions{
		UID:          true,
		Envelope:     true,
		InternalDate: true,
		BodySection:  []*imap.FetchItemBodySection{bodyAll},
	}

	fetchCmd := c.Fetch(uidSet, fetchOptions)
	defer func() { _ = fetchCmd.Close() }()

	out := make([]Message, 0, len(uids))

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}

		buf, err := msgData.Collect()
		if err != nil {
			return nil, fmt.Errorf("imap fetch collect: %w", err)
		}

		var m Message
		m.UID = buf.UID

		if buf.Envelope != nil {
			m.Subject = buf.Envelope.Subject
			m.Date = buf.Envelope.Date
			m.From = joinAddrs(buf.Envelope.From)
		}

		if b := buf.FindBodySection(bodyAll); b != nil {
			m.RawMessage = append([]byte(nil), b...)
		}

		if (m.Subject == "" || m.From == "") && len(m.RawMessage) > 0 {
			subj, from := parseHeadersFallback(m.RawMessage)
			if m.Subject == "" {
				m.Subject = subj
			}
			if m.From == "" {
				m.From = from
			}
		}

		out = append(out, m)
	}

	if err := fetchCmd.Close(); err != nil {
		return nil, fmt.Errorf("imap fetch close: %w", err)
	}

	return out, nil
}

// markSeen sets \Seen on a UID set. In go-imap v2 Store has no Wait; closing
// the command yields the final status.
func markSeen(c *imapclient.Client, uids []imap.UID) error {
	if len(uids) == 0 {
		return nil
	}

	set := imap.UIDSetNum(uids...)

	storeFlags := &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagSeen},
	}

	cmd := c.Store(set, storeFlags, nil)
	if err := cmd.Close(); err != nil {
		return fmt.Errorf("imap store add seen: %w", err)
	}
	return nil
}

func logoutAndClose(c *imapclient.Client) {
	if c == nil {
		return
	}
	_ = c.Logout().Wait()
	_ = c.Close()
}

func joinAddrs(addrs []imap.Address) string {
	parts := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Mailbox == "" || a.Host == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s@%s", a.Mailbox, a.Host))
	}
	return strings.Join(parts, ", ")
}

func parseHeadersFallback(raw []byte) (subject, from string) {
	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		return "", ""
	}
	return strings.TrimSpace(msg.Header.Get("Subject")), strings.TrimSpace(msg.Header.Get("From"))
}
