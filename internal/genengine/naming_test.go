package genengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLowerCamel(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"Name":       "name",
		"ID":         "id",
		"IDToken":    "idToken",
		"HTTPServer": "httpServer",
		"X":          "x",
		"already":    "already",
	}
	for in, want := range cases {
		require.Equal(t, want, lowerCamel(in), "lowerCamel(%q)", in)
	}
}
