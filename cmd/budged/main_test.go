package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdSubcommands(t *testing.T) {
	want := []string{"report", "parse", "statements", "categories", "mcp", "version"}

	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, name := range want {
		assert.True(t, names[name], "%s subcommand should exist", name)
	}
}

func TestSetupLogging(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "debug console", level: "debug", format: "console"},
		{name: "info json", level: "info", format: "json"},
		{name: "warn console", level: "warn", format: "console"},
		{name: "error json", level: "error", format: "json"},
		{name: "invalid level", level: "verbose", format: "console", wantErr: true},
		{name: "invalid format", level: "info", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("logging.level", tt.level)
			viper.Set("logging.format", tt.format)
			t.Cleanup(func() {
				viper.Set("logging.level", "info")
				viper.Set("logging.format", "console")
			})

			err := setupLogging()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
