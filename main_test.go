package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/relaytools/relaycheck/internal/relaylist"
	"github.com/relaytools/relaycheck/internal/relayurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResults_Text(t *testing.T) {
	var buf bytes.Buffer
	results := classify([]string{"wss://relay.example.com/", "https://relay.example.com", "not a url"})
	require.NoError(t, writeResults(&buf, results, false))
	assert.Equal(t,
		"wss://relay.example.com\turi=true\trelay=true\n"+
			"https://relay.example.com\turi=true\trelay=false\n"+
			"not a url\turi=false\trelay=false\n",
		buf.String())
}

func TestWriteResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeResults(&buf, classify([]string{"ws://localhost:8080/"}), true))
	assert.JSONEq(t, `{"url":"ws://localhost:8080","valid_uri":true,"relay":false}`, buf.String())
}

func TestMarkerFilter(t *testing.T) {
	write := relaylist.Entry{URL: relayurl.New("wss://nos.lol"), Marker: relaylist.MarkerWrite}
	read := relaylist.Entry{URL: relayurl.New("wss://nos.lol"), Marker: relaylist.MarkerRead}

	f, err := markerFilter("")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = markerFilter("write")
	require.NoError(t, err)
	assert.True(t, f(write))
	assert.False(t, f(read))

	f, err = markerFilter("read")
	require.NoError(t, err)
	assert.False(t, f(write))
	assert.True(t, f(read))

	_, err = markerFilter("both")
	assert.Error(t, err)
}

func TestWriteStats(t *testing.T) {
	stats := []relaylist.Stat{
		{URL: relayurl.New("wss://nos.lol"), Authors: 4, ValidURI: true, Relay: true},
		{URL: relayurl.New("ws://127.0.0.1"), Authors: 1, ValidURI: true},
	}
	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, stats, false))
	assert.Equal(t, "4\twss://nos.lol\n1\tws://127.0.0.1\t(not a relay URL)\n", buf.String())
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("wss://a.example.com\r\n\n   \n wss://b.example.com \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"wss://a.example.com", " wss://b.example.com "}, lines)
}

func TestIsHex64(t *testing.T) {
	assert.True(t, isHex64(strings.Repeat("ab", 32)))
	assert.False(t, isHex64(strings.Repeat("AB", 32)))
	assert.False(t, isHex64(strings.Repeat("a", 63)))
	assert.False(t, isHex64(strings.Repeat("g", 64)))
}
