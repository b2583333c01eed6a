package relayurl

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// MarshalText encodes the URL text. Validity is derived and never encoded.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.text), nil
}

// UnmarshalText builds the URL with New, so any string decodes.
func (u *URL) UnmarshalText(text []byte) error {
	*u = New(string(text))
	return nil
}

// MarshalEasyJSON lets URL sit inside easyjson-generated types such as
// nostr events.
func (u URL) MarshalEasyJSON(w *jwriter.Writer) {
	w.String(u.text)
}

// UnmarshalEasyJSON reads a JSON string. A non-string token is left for the
// lexer to report.
func (u *URL) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if l.IsNull() {
		l.Skip()
		return
	}
	s := l.String()
	if l.Ok() {
		*u = New(s)
	}
}
