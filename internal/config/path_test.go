package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := filepath.Abs(t.TempDir())
	require.NoError(t, err)
	t.Setenv("HOME", home)
	t.Setenv("STATEMENTS_ROOT", "/srv/statements")
	t.Setenv("YEAR_DIR", "2026")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty stays empty", input: "", want: ""},
		{name: "plain path untouched", input: "./statements", want: "./statements"},
		{name: "bare tilde", input: "~", want: home},
		{name: "tilde prefix", input: "~/statements", want: filepath.Join(home, "statements")},
		{name: "env variable", input: "$STATEMENTS_ROOT/2026", want: "/srv/statements/2026"},
		{name: "tilde and env combined", input: "~/$YEAR_DIR", want: filepath.Join(home, "2026")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}
