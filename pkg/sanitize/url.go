package sanitize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidURL = errors.New("invalid URL")
	ErrURLScheme  = errors.New("URL scheme must be http or https")
)

// Generic URI splitter from RFC 3986, appendix B.
var uriPattern = regexp.MustCompile(`^(?:([^:/?#]+):)?(?://([^/?#]*))?([^?#]*)(?:\?([^#]*))?(?:#(.*))?$`)

var (
	ipLiteral = regexp.MustCompile(`^\[[0-9A-Fa-f:.]+\]$`)
	portDigit = regexp.MustCompile(`^[0-9]*$`)
)

// URL sanitizes an absolute http(s) URL.
//
// The scheme must be http or https and the host must be non-empty and made
// of unreserved characters, sub-delimiters or valid percent escapes. Non-ASCII
// and control characters are rejected. Sub-delimiters in the host and
// characters outside the RFC 3986 sets in path, query and fragment are
// percent-encoded; existing escapes are kept, so URL(URL(s)) == URL(s).
func URL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x80 || c < 0x20 || c == 0x7f {
			return "", fmt.Errorf("%w: non-ASCII or control character in %q", ErrInvalidURL, raw)
		}
	}

	m := uriPattern.FindStringSubmatchIndex(s)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	group := func(n int) (string, bool) {
		if m[2*n] < 0 {
			return "", false
		}
		return s[m[2*n]:m[2*n+1]], true
	}

	scheme, ok := group(1)
	if !ok {
		return "", fmt.Errorf("%w: missing scheme in %q", ErrURLScheme, raw)
	}
	scheme = strings.ToLower(scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: got %q", ErrURLScheme, scheme)
	}

	authority, _ := group(2)
	netloc, err := sanitizeAuthority(authority)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(netloc)
	path, _ := group(3)
	b.WriteString(escape(path, isPathSafe))
	if query, ok := group(4); ok && query != "" {
		b.WriteByte('?')
		b.WriteString(escape(query, isQuerySafe))
	}
	if fragment, ok := group(5); ok && fragment != "" {
		b.WriteByte('#')
		b.WriteString(escape(fragment, isQuerySafe))
	}
	return b.String(), nil
}

func sanitizeAuthority(authority string) (string, error) {
	var userinfo string
	hostport := authority
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		userinfo, hostport = authority[:at], authority[at+1:]
	}

	host, port, hasPort := hostport, "", false
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated IP literal %q", ErrInvalidURL, hostport)
		}
		host = hostport[:end+1]
		rest := hostport[end+1:]
		if rest != "" {
			if rest[0] != ':' {
				return "", fmt.Errorf("%w: malformed host %q", ErrInvalidURL, hostport)
			}
			port, hasPort = rest[1:], true
		}
	} else if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		host, port, hasPort = hostport[:i], hostport[i+1:], true
	}

	if host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidURL)
	}
	if hasPort && !portDigit.MatchString(port) {
		return "", fmt.Errorf("%w: malformed port %q", ErrInvalidURL, port)
	}

	if strings.HasPrefix(host, "[") {
		if !ipLiteral.MatchString(host) {
			return "", fmt.Errorf("%w: malformed IP literal %q", ErrInvalidURL, host)
		}
	} else {
		if err := checkHost(host); err != nil {
			return "", err
		}
		host = escape(host, func(byte) bool { return false })
	}

	var b strings.Builder
	if userinfo != "" {
		b.WriteString(escape(userinfo, isUserinfoSafe))
		b.WriteByte('@')
	}
	b.WriteString(host)
	if hasPort {
		b.WriteByte(':')
		b.WriteString(port)
	}
	return b.String(), nil
}

// checkHost accepts reg-name characters and well-formed percent escapes only.
func checkHost(host string) error {
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case isUnreserved(c) || isSubDelim(c):
		case c == '%' && i+2 < len(host) && isHex(host[i+1]) && isHex(host[i+2]):
			i += 2
		default:
			return fmt.Errorf("%w: malformed host %q", ErrInvalidURL, host)
		}
	}
	return nil
}

// escape percent-encodes every byte that is neither unreserved nor accepted
// by safe. Valid %XX escapes pass through untouched.
func escape(s string, safe func(byte) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteString(s[i : i+3])
			i += 2
		case isUnreserved(c) || safe(c):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func isSubDelim(c byte) bool {
	return strings.IndexByte("!$&'()*+,;=", c) >= 0
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isUserinfoSafe(c byte) bool { return isSubDelim(c) || c == ':' }

func isPathSafe(c byte) bool { return isSubDelim(c) || c == ':' || c == '@' || c == '/' }

func isQuerySafe(c byte) bool { return isPathSafe(c) || c == '?' }
