// Package relaylist reads NIP-65 relay list events (kind 10002) into relay URLs.
package relaylist

import (
	"strings"

	"github.com/nbd-wtf/go-nostr"
	"github.com/relaytools/relaycheck/internal/relayurl"
)

// KindRelayList is the NIP-65 relay list metadata kind.
const KindRelayList = 10002

const (
	MarkerRead  = "read"
	MarkerWrite = "write"
)

// Entry is one "r" tag of a relay list.
type Entry struct {
	URL    relayurl.URL `json:"url"`
	Marker string       `json:"marker,omitempty"`
}

// Outbox reports whether the author publishes to this relay.
// An unmarked entry is both read and write.
func (e Entry) Outbox() bool {
	return e.Marker == "" || e.Marker == MarkerWrite
}

// Inbox reports whether the author reads from this relay.
func (e Entry) Inbox() bool {
	return e.Marker == "" || e.Marker == MarkerRead
}

// FromEvent returns the relay entries of a kind 10002 event, in tag order.
// Repeated URLs keep their first entry. Other kinds yield nothing.
func FromEvent(ev *nostr.Event) []Entry {
	if ev == nil || ev.Kind != KindRelayList {
		return nil
	}
	var out []Entry
	seen := make(map[relayurl.URL]struct{})
	for _, tag := range ev.Tags {
		if len(tag) < 2 || tag[0] != "r" {
			continue
		}
		u := relayurl.New(tag[1])
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		e := Entry{URL: u}
		if len(tag) >= 3 {
			e.Marker = strings.ToLower(tag[2])
		}
		out = append(out, e)
	}
	return out
}
