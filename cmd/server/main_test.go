package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--port", "0"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB")
}

func TestRootCmdRejectsBadPort(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "k")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--port", "-1"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "port", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
