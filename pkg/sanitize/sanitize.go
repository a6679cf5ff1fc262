// Package sanitize normalizes administrative form input. Values are cleaned,
// never rejected: hopeless input collapses to the empty string, which the
// rest of the system reads as "unconfigured".
package sanitize

import (
	"strings"
)

// URL normalizes s into a safe absolute URL.
//
// Whitespace, control characters and markup-significant characters are
// stripped. Only http and https schemes survive; any other scheme yields "".
// Schemeless input gets an "http://" prefix.
func URL(s string) string {
	s = strings.Map(dropUnsafeURLRune, strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	scheme, rest, ok := splitScheme(s)
	if ok {
		scheme = strings.ToLower(scheme)
		if scheme != "http" && scheme != "https" {
			return ""
		}
		return scheme + "://" + rest
	}

	return "http://" + s
}

func dropUnsafeURLRune(r rune) rune {
	if r <= 0x20 || r == 0x7f {
		return -1
	}
	switch r {
	case '<', '>', '"', '\'', '`', '\\':
		return -1
	}
	return r
}

// splitScheme detects an explicit scheme: either "scheme://rest" or a bare
// "scheme:rest" (e.g. javascript:). A colon after the first slash belongs to
// the path or authority, not the scheme.
func splitScheme(s string) (scheme, rest string, ok bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return "", "", false
	}
	if slash := strings.IndexByte(s, '/'); slash >= 0 && slash < colon {
		return "", "", false
	}

	scheme = s[:colon]
	rest = strings.TrimPrefix(s[colon+1:], "//")
	return scheme, rest, true
}

// Text normalizes s into a single line of plain text: markup tags and
// percent-encoded octets are stripped, control characters become spaces and
// whitespace runs collapse.
func Text(s string) string {
	s = stripTags(s)
	s = stripOctets(s)

	var b strings.Builder
	space := false
	for _, r := range s {
		if r < 0x21 || r == 0x7f {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

func stripTags(s string) string {
	var b strings.Builder
	for {
		open := strings.IndexByte(s, '<')
		if open < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:open])
		end := strings.IndexByte(s[open:], '>')
		if end < 0 {
			// unterminated tag swallows the remainder
			return b.String()
		}
		s = s[open+end+1:]
	}
}

func stripOctets(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		return true
	}
	return false
}
