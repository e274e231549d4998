package mailscan

import (
	"bytes"
	"encoding/base64"
	"html"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"regexp"
	"strings"
)

const maxBodyBytes = 5 << 20

var tagRe = regexp.MustCompile(`(?s)<[^>]*>`)

// extractBodyText turns raw RFC822 bytes into the plain text the detector
// scores. Prefers the text/plain part, falls back to stripped HTML.
func extractBodyText(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		return string(raw)
	}

	bodyRaw, _ := io.ReadAll(io.LimitReader(msg.Body, maxBodyBytes))
	plain, htmlPart := extractMIMETextParts(msg.Header, bodyRaw)

	if strings.TrimSpace(plain) != "" {
		return plain
	}
	if htmlPart != "" {
		return htmlToText(htmlPart)
	}
	return string(bodyRaw)
}

func extractMIMETextParts(h mail.Header, body []byte) (plain string, htmlPart string) {
	ct := h.Get("Content-Type")
	cte := strings.ToLower(strings.TrimSpace(h.Get("Content-Transfer-Encoding")))

	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		// not parseable; treat as single-part
		return string(decodeTransferEncoding(body, cte)), ""
	}

	mediaType = strings.ToLower(mediaType)

	if strings.HasPrefix(mediaType, "multipart/") {
		boundary := params["boundary"]
		if boundary == "" {
			return string(decodeTransferEncoding(body, cte)), ""
		}

		mr := multipart.NewReader(bytes.NewReader(body), boundary)

		var bestPlain, bestHTML string
		for {
			p, err := mr.NextPart()
			if err != nil {
				break
			}
			partCT := p.Header.Get("Content-Type")
			partCTE := strings.ToLower(strings.TrimSpace(p.Header.Get("Content-Transfer-Encoding")))

			pMedia, _, _ := mime.ParseMediaType(partCT)
			pMedia = strings.ToLower(pMedia)

			b, _ := io.ReadAll(io.LimitReader(p, maxBodyBytes))
			b = decodeTransferEncoding(b, partCTE)

			// nested multipart
			if strings.HasPrefix(pMedia, "multipart/") {
				pl, ht := extractMIMETextParts(mail.Header(p.Header), b)
				if len(ht) > len(bestHTML) {
					bestHTML = ht
				}
				if len(pl) > len(bestPlain) {
					bestPlain = pl
				}
				continue
			}

			switch {
			case strings.HasPrefix(pMedia, "text/html"):
				if len(b) > len(bestHTML) {
					bestHTML = string(b)
				}
			case strings.HasPrefix(pMedia, "text/plain"):
				if len(b) > len(bestPlain) {
					bestPlain = string(b)
				}
			}
		}

		return bestPlain, bestHTML
	}

	s := decodeTransferEncoding(body, cte)
	if strings.HasPrefix(mediaType, "text/html") {
		return "", string(s)
	}
	return string(s), ""
}

func decodeTransferEncoding(b []byte, cte string) []byte {
	switch cte {
	case "base64":
		dec := base64.NewDecoder(base64.StdEncoding, bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, maxBodyBytes))
		return out
	case "quoted-printable":
		dec := quotedprintable.NewReader(bytes.NewReader(b))
		out, _ := io.ReadAll(io.LimitReader(dec, maxBodyBytes))
		return out
	default:
		return b
	}
}

func htmlToText(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

func decodeRFC2047(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	dec := new(mime.WordDecoder)
	out, err := dec.DecodeHeader(s)
	if err != nil {
		return s
	}
	return out
}
