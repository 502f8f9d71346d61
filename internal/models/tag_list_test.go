package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want TagList
	}{
		{"simple", "outdoor,summer", TagList{"outdoor", "summer"}},
		{"trims whitespace", " outdoor , summer ", TagList{"outdoor", "summer"}},
		{"drops empties", "outdoor,, ,summer,", TagList{"outdoor", "summer"}},
		{"empty input", "", TagList{}},
		{"keeps order", "c,a,b", TagList{"c", "a", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ParseTags(tc.raw))
		})
	}
}

func TestTagListRoundTrip(t *testing.T) {
	tags := TagList{"outdoor", "summer"}

	v, err := tags.Value()
	require.NoError(t, err)
	require.Equal(t, "outdoor,summer", v)

	var scanned TagList
	require.NoError(t, scanned.Scan("outdoor,summer"))
	require.Equal(t, tags, scanned)

	require.NoError(t, scanned.Scan(nil))
	require.Nil(t, scanned)

	require.Equal(t, "outdoor, summer", tags.String())

	empty := TagList{}
	v, err = empty.Value()
	require.NoError(t, err)
	require.Equal(t, "", v)
}
