package capi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreetPassThrough(t *testing.T) {
	assert.Equal(t, "Hello from Hildie Rust Library, World!", Greet("World"))
	assert.Equal(t, "Hello from Hildie Rust Library, !", Greet(""))
}

func TestAddPassThrough(t *testing.T) {
	assert.Equal(t, int64(5), Add(2, 3))
	assert.Equal(t, int64(0), Add(-1, 1))
	assert.Equal(t, int64(math.MinInt64), Add(math.MaxInt64, 1))
}

func TestGreetAllRoundTrip(t *testing.T) {
	out, err := GreetAll([]byte(`["Alice","Bob"]`))
	require.NoError(t, err)
	assert.JSONEq(t,
		`["Hello from Hildie Rust Library, Alice!","Hello from Hildie Rust Library, Bob!"]`,
		string(out))
}

func TestGreetAllEmptyArray(t *testing.T) {
	out, err := GreetAll([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestGreetAllMalformedDocument(t *testing.T) {
	for _, doc := range []string{``, `{`, `{"name":"Alice"}`, `[1,2]`} {
		out, err := GreetAll([]byte(doc))
		assert.Nil(t, out, "doc %q", doc)
		var merr *MarshalError
		assert.ErrorAs(t, err, &merr, "doc %q", doc)
	}
}
