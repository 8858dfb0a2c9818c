// internal/decoder/reading_test.go
package decoder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReading_MarshalJSON(t *testing.T) {
	cases := map[string]struct {
		in   Reading
		want string
	}{
		"analog":           {Analog(23.5), "23.5"},
		"analog whole":     {Analog(45), "45"},
		"analog zero":      {Analog(0), "0"},
		"counter":          {Counter(12547), "12547"},
		"discrete":         {Discrete(true), "true"},
		"invalid analog":   {Invalid(KindAnalog), "null"},
		"invalid counter":  {Invalid(KindCounter), "null"},
		"invalid discrete": {Invalid(KindDiscrete), "null"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestParseJSON(t *testing.T) {
	r, err := ParseJSON(KindAnalog, []byte("0"))
	require.NoError(t, err)
	assert.Equal(t, Analog(0), r)

	r, err = ParseJSON(KindAnalog, []byte("null"))
	require.NoError(t, err)
	assert.Equal(t, Invalid(KindAnalog), r)

	r, err = ParseJSON(KindCounter, []byte("1456"))
	require.NoError(t, err)
	assert.Equal(t, Counter(1456), r)

	r, err = ParseJSON(KindDiscrete, []byte("false"))
	require.NoError(t, err)
	assert.Equal(t, Discrete(false), r)

	_, err = ParseJSON(KindCounter, []byte("-1"))
	assert.Error(t, err)

	_, err = ParseJSON(KindDiscrete, []byte(`"on"`))
	assert.Error(t, err)
}

func TestReading_Accessors(t *testing.T) {
	_, ok := Analog(1).Raw()
	assert.False(t, ok, "analog is not a counter")

	_, ok = Invalid(KindDiscrete).Bool()
	assert.False(t, ok)

	assert.Equal(t, "invalid", Invalid(KindAnalog).String())
	assert.Equal(t, "12.5", Analog(12.5).String())
}
