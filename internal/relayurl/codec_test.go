package relayurl

import (
	"encoding/json"
	"testing"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayDoc struct {
	Relay URL `json:"relay"`
}

func TestMarshalJSON_EncodesTextOnly(t *testing.T) {
	data, err := json.Marshal(relayDoc{Relay: New("wss://example.com/")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"relay":"wss://example.com"}`, string(data))

	data, err = json.Marshal(relayDoc{Relay: New("not a url")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"relay":"not a url"}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected URL
	}{
		{
			name:     "relay URL",
			input:    `{"relay":"wss://relay.example.com"}`,
			expected: New("wss://relay.example.com"),
		},
		{
			name:     "trailing slash is normalized",
			input:    `{"relay":"wss://relay.example.com/"}`,
			expected: New("wss://relay.example.com"),
		},
		{
			name:     "garbage still decodes",
			input:    `{"relay":"totally not a uri"}`,
			expected: New("totally not a uri"),
		},
		{
			name:     "null leaves zero value",
			input:    `{"relay":null}`,
			expected: URL{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc relayDoc
			require.NoError(t, json.Unmarshal([]byte(tt.input), &doc))
			assert.Equal(t, tt.expected, doc.Relay)
		})
	}
}

func TestUnmarshalJSON_NonString(t *testing.T) {
	for _, input := range []string{`{"relay":42}`, `{"relay":true}`, `{"relay":["wss://a.com"]}`} {
		var doc relayDoc
		err := json.Unmarshal([]byte(input), &doc)
		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr, input)
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	for _, s := range samples {
		u := New(s)
		data, err := json.Marshal(u)
		require.NoError(t, err)

		var got URL
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, u, got, s)
	}
}

func TestText_RoundTrip(t *testing.T) {
	for _, s := range samples {
		u := New(s)
		text, err := u.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, u.Inner(), string(text))

		var got URL
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, u, got, s)
	}
}

func TestEasyJSON(t *testing.T) {
	data, err := easyjson.Marshal(New("wss://relay.example.com/"))
	require.NoError(t, err)
	assert.Equal(t, `"wss://relay.example.com"`, string(data))

	var u URL
	require.NoError(t, easyjson.Unmarshal([]byte(`"ws://localhost:8080/"`), &u))
	assert.Equal(t, New("ws://localhost:8080"), u)
	assert.True(t, u.IsValid())
	assert.False(t, u.IsValidRelayURL())

	before := mockURL()
	u = before
	require.NoError(t, easyjson.Unmarshal([]byte(`null`), &u))
	assert.Equal(t, before, u)

	u = before
	assert.Error(t, easyjson.Unmarshal([]byte(`42`), &u))
	assert.Equal(t, before, u)
}

func TestEasyJSON_RoundTrip(t *testing.T) {
	for _, s := range samples {
		u := New(s)
		data, err := easyjson.Marshal(u)
		require.NoError(t, err)

		var got URL
		require.NoError(t, easyjson.Unmarshal(data, &got))
		assert.Equal(t, u, got, s)
	}
}
