package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nbd-wtf/go-nostr"
	"github.com/relaytools/relaycheck/internal/relaylist"
	"github.com/sirupsen/logrus"
)

// markerFilter maps the -marker flag onto an entry filter.
func markerFilter(marker string) (func(relaylist.Entry) bool, error) {
	switch marker {
	case "":
		return nil, nil
	case relaylist.MarkerWrite:
		return relaylist.Entry.Outbox, nil
	case relaylist.MarkerRead:
		return relaylist.Entry.Inbox, nil
	default:
		return nil, fmt.Errorf("unknown marker %q (want read or write)", marker)
	}
}

func writeStats(w io.Writer, stats []relaylist.Stat, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, s := range stats {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range stats {
		note := ""
		if !s.Relay {
			note = "\t(not a relay URL)"
		}
		if _, err := fmt.Fprintf(w, "%d\t%s%s\n", s.Authors, s.URL, note); err != nil {
			return err
		}
	}
	return nil
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	logOpts := commonFlags(fs)
	input := fs.String("input", "", "path to a JSONL file of kind 10002 events")
	marker := fs.String("marker", "", "only count read or write entries (unmarked entries count for both)")
	all := fs.Bool("all", false, "also list URLs that are not usable relay URLs")
	asJSON := fs.Bool("json", false, "print one JSON object per relay")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse flags: %v\n", err)
		os.Exit(1)
	}
	logOpts.setup()

	if *input == "" {
		fs.Usage()
		log.Fatal("-input is required")
	}
	filter, err := markerFilter(*marker)
	if err != nil {
		log.WithError(err).Fatal("invalid -marker")
	}

	in, err := os.Open(*input)
	if err != nil {
		log.WithError(err).WithField("input", *input).Fatal("failed to open input")
	}
	defer in.Close()

	tally := relaylist.NewTally()
	tally.Filter = filter
	skipped, err := relaylist.ReadJSONL(in, func(ev *nostr.Event) error {
		tally.Add(ev)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("scan error")
	}
	if skipped > 0 {
		log.WithField("lines", skipped).Warn("skipped malformed lines")
	}

	stats := tally.Stats(*all)
	log.WithFields(logrus.Fields{
		"events": tally.Events(),
		"relays": len(stats),
	}).Info("relay lists tallied")
	if err := writeStats(os.Stdout, stats, *asJSON); err != nil {
		log.WithError(err).Fatal("failed to write results")
	}
}
