package relaylist

import (
	"bufio"
	"bytes"
	"io"

	"github.com/mailru/easyjson"
	"github.com/nbd-wtf/go-nostr"
	"github.com/tidwall/gjson"
)

const maxLineSize = 4 << 20

// ReadJSONL calls fn for every kind 10002 event in r, one JSON event per line.
// Blank lines, other kinds and lines that do not decode are skipped; the
// number of undecodable lines is returned. An error from fn stops the read.
func ReadJSONL(r io.Reader, fn func(*nostr.Event) error) (skipped int, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] != '{' || !gjson.ValidBytes(line) {
			skipped++
			continue
		}
		if gjson.GetBytes(line, "kind").Int() != KindRelayList {
			continue
		}
		var ev nostr.Event
		if err := easyjson.Unmarshal(line, &ev); err != nil {
			skipped++
			continue
		}
		if err := fn(&ev); err != nil {
			return skipped, err
		}
	}
	return skipped, s.Err()
}
