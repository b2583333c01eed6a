package relayurl

import (
	"cmp"
	"net/url"
	"strings"
)

// URL is a relay URL string along with whether it parsed as a URI.
//
// Construction never fails. An unparseable string still yields a URL whose
// IsValid reports false, so callers can keep and inspect whatever they were
// handed. URL values are comparable with ==.
type URL struct {
	text     string
	validURI bool
}

// New creates a URL from raw. A single trailing slash is removed; nothing
// else about the input is changed.
func New(raw string) URL {
	text := strings.TrimSuffix(raw, "/")
	_, ok := parse(text)
	return URL{text: text, validURI: ok}
}

// Inner returns the normalized URL text.
func (u URL) Inner() string {
	return u.text
}

func (u URL) String() string {
	return u.text
}

// IsValid reports whether the text parsed as a URI when u was created.
func (u URL) IsValid() bool {
	return u.validURI
}

// IsValidRelayURL reports whether u is a ws or wss URL with a host that is
// not a loopback name or address. It is evaluated from the text on each call.
func (u URL) IsValidRelayURL() bool {
	parsed, ok := parse(u.text)
	if !ok || parsed.Scheme == "" {
		return false
	}
	// url.Parse lowercases the scheme, so check the text as written.
	switch u.text[:len(parsed.Scheme)] {
	case "ws", "wss":
	default:
		return false
	}
	if parsed.Host == "" {
		return false
	}
	host := hostOf(parsed.Host)
	if host != strings.TrimSpace(host) {
		return false
	}
	for _, prefix := range blockedHostPrefixes {
		if strings.HasPrefix(host, prefix) {
			return false
		}
	}
	return true
}

// Host returns the lowercase host without port, for host-based grouping.
// It is empty when u is not a valid URI.
func (u URL) Host() string {
	parsed, ok := parse(u.text)
	if !ok {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// DTag returns the URL in the form expected for NIP-66 d-tags
// (normalized plus a trailing slash).
func (u URL) DTag() string {
	return u.text + "/"
}

// Compare orders URLs by text, then by URI validity.
func Compare(a, b URL) int {
	if c := strings.Compare(a.text, b.text); c != 0 {
		return c
	}
	return cmp.Compare(boolInt(a.validURI), boolInt(b.validURI))
}

// Literal prefixes of the host as written, IPv6 brackets included.
// These are not address classes: "[::1]" does not match "[::1/".
var blockedHostPrefixes = []string{
	"localhost",
	"127.",
	"[::1/",
	"[0:",
}

// parse is the structural URI check shared by New and the relay predicate.
// Accepted forms: an absolute path, a bare authority such as
// "relay.example.com:443", or scheme "://" authority followed by anything.
func parse(text string) (*url.URL, bool) {
	if text == "" || !isURIText(text) {
		return nil, false
	}
	switch {
	case strings.HasPrefix(text, "/"):
		parsed, err := url.Parse(text)
		return parsed, err == nil
	case !strings.ContainsAny(text, "/?#"):
		parsed, err := url.Parse("//" + text)
		if err != nil || parsed.Host == "" {
			return nil, false
		}
		return parsed, true
	}
	parsed, err := url.Parse(text)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, false
	}
	if !strings.HasPrefix(text[len(parsed.Scheme):], "://") {
		return nil, false
	}
	return parsed, true
}

// isURIText reports whether every byte of s may appear in an RFC 3986 URI
// and every '%' starts a two-digit hex escape.
func isURIText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case strings.IndexByte("-._~:/?#[]@!$&'()*+,;=", c) >= 0:
		case c == '%':
			if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// hostOf strips the port from an authority's host:port, keeping the
// brackets of an IPv6 literal.
func hostOf(hostport string) string {
	if strings.HasPrefix(hostport, "[") {
		if i := strings.IndexByte(hostport, ']'); i >= 0 {
			return hostport[:i+1]
		}
		return hostport
	}
	if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		return hostport[:i]
	}
	return hostport
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
