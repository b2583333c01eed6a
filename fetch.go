package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/relaytools/relaycheck/internal/relaylist"
	"github.com/relaytools/relaycheck/internal/relayurl"
)

const defaultRelays = "wss://relay.damus.io,wss://nos.lol,wss://relay.snort.social,wss://purplepag.es"

func fetchCmd(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	logOpts := commonFlags(fs)
	var relays relayurl.List
	fs.Var(&relays, "relay", "relay to query, repeatable or comma-separated (default "+defaultRelays+")")
	pubkey := fs.String("pubkey", "", "64-hex pubkey whose relay list to fetch")
	timeoutSec := fs.Int("timeout", 12, "seconds to wait per relay")
	asJSON := fs.Bool("json", false, "print the entries as JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}
	logOpts.setup()

	pk := strings.ToLower(*pubkey)
	if !isHex64(pk) {
		log.Fatal("-pubkey (64-hex) is required and must be valid hex")
	}
	if len(relays) == 0 {
		if err := relays.Set(defaultRelays); err != nil {
			log.WithError(err).Fatal("bad default relays")
		}
	}

	ctx := context.Background()
	timeout := time.Duration(*timeoutSec) * time.Second
	for _, relay := range relays {
		l := log.WithField("relay", relay.String())
		l.Debug("fetching relay list")
		entries, err := relaylist.Fetch(ctx, relay, pk, timeout)
		if err != nil {
			l.WithError(err).Warn("fetch failed")
			continue
		}
		if len(entries) == 0 {
			l.Info("no relay list found")
			continue
		}
		l.WithField("entries", len(entries)).Info("relay list found")
		if *asJSON {
			if err := json.NewEncoder(os.Stdout).Encode(entries); err != nil {
				log.WithError(err).Fatal("failed to write results")
			}
			return
		}
		for _, e := range entries {
			fmt.Printf("%s\t%s\trelay=%t\n", e.URL, markerOrBoth(e.Marker), e.URL.IsValidRelayURL())
		}
		return
	}
	log.Fatal("no relay returned a relay list")
}

func markerOrBoth(marker string) string {
	if marker == "" {
		return "read+write"
	}
	return marker
}
