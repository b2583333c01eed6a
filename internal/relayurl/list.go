package relayurl

import (
	"fmt"
	"strings"
)

// List is a flag.Value collecting relay URLs from a repeatable flag.
type List []URL

func (l *List) String() string {
	out := make([]string, len(*l))
	for i, u := range *l {
		out[i] = u.String()
	}
	return strings.Join(out, ",")
}

// Set accepts a single URL or a comma-separated list. Entries that are not
// usable relay URLs are rejected.
func (l *List) Set(value string) error {
	for _, raw := range strings.Split(value, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		u := New(raw)
		if !u.IsValidRelayURL() {
			return fmt.Errorf("not a relay URL: %q", raw)
		}
		*l = append(*l, u)
	}
	return nil
}
