package relaylist

import (
	"slices"
	"strings"

	"github.com/nbd-wtf/go-nostr"
	"github.com/relaytools/relaycheck/internal/relayurl"
)

// Stat is the number of distinct authors listing one relay URL.
type Stat struct {
	URL      relayurl.URL `json:"url"`
	Host     string       `json:"host,omitempty"`
	Authors  int          `json:"authors"`
	ValidURI bool         `json:"valid_uri"`
	Relay    bool         `json:"relay"`
}

// Tally counts authors per relay URL across relay list events.
type Tally struct {
	// Filter, when set, drops entries it returns false for.
	Filter func(Entry) bool

	events  int
	authors map[relayurl.URL]map[string]struct{}
}

func NewTally() *Tally {
	return &Tally{authors: make(map[relayurl.URL]map[string]struct{})}
}

// Add records the entries of ev under its author.
func (t *Tally) Add(ev *nostr.Event) {
	entries := FromEvent(ev)
	if entries == nil {
		return
	}
	t.events++
	pk := strings.ToLower(ev.PubKey)
	for _, e := range entries {
		if t.Filter != nil && !t.Filter(e) {
			continue
		}
		if t.authors == nil {
			t.authors = make(map[relayurl.URL]map[string]struct{})
		}
		if t.authors[e.URL] == nil {
			t.authors[e.URL] = make(map[string]struct{})
		}
		t.authors[e.URL][pk] = struct{}{}
	}
}

// Events returns how many relay list events were added.
func (t *Tally) Events() int {
	return t.events
}

// Stats returns one Stat per URL, most listed first. Unless includeInvalid
// is set, URLs that are not usable relay URLs are left out.
func (t *Tally) Stats(includeInvalid bool) []Stat {
	out := make([]Stat, 0, len(t.authors))
	for u, pks := range t.authors {
		relay := u.IsValidRelayURL()
		if !relay && !includeInvalid {
			continue
		}
		out = append(out, Stat{
			URL:      u,
			Host:     u.Host(),
			Authors:  len(pks),
			ValidURI: u.IsValid(),
			Relay:    relay,
		})
	}
	slices.SortFunc(out, func(a, b Stat) int {
		if a.Authors != b.Authors {
			return b.Authors - a.Authors
		}
		return relayurl.Compare(a.URL, b.URL)
	})
	return out
}
