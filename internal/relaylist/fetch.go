package relaylist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/relaytools/relaycheck/internal/relayurl"
)

var ErrNotRelayURL = errors.New("not a relay URL")

// Fetch retrieves the newest relay list of pubkey from relay. It returns the
// entries received by end of stored events or by timeout, whichever comes
// first; a timeout is not an error.
func Fetch(ctx context.Context, relay relayurl.URL, pubkey string, timeout time.Duration) ([]Entry, error) {
	if !relay.IsValidRelayURL() {
		return nil, fmt.Errorf("%w: %s", ErrNotRelayURL, relay)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := nostr.RelayConnect(ctx, relay.Inner())
	if err != nil {
		return nil, fmt.Errorf("relay connect: %w", err)
	}
	defer conn.Close()

	filters := nostr.Filters{
		nostr.Filter{
			Kinds:   []int{KindRelayList},
			Authors: []string{strings.ToLower(pubkey)},
			Limit:   1,
		},
	}

	sub, err := conn.Subscribe(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Unsub()

	var newest *nostr.Event
	for {
		select {
		case <-ctx.Done():
			return FromEvent(newest), nil
		case <-sub.EndOfStoredEvents:
			return FromEvent(newest), nil
		case ev := <-sub.Events:
			if ev == nil || ev.Kind != KindRelayList {
				continue
			}
			if newest == nil || ev.CreatedAt > newest.CreatedAt {
				newest = ev
			}
		}
	}
}
