package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := rootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--orders", "http://o:1", "-n", "3", "-u", "bob"}))

	orders, err := cmd.Flags().GetString("orders")
	require.NoError(t, err)
	assert.Equal(t, "http://o:1", orders)

	parallel, err := cmd.Flags().GetInt("parallel")
	require.NoError(t, err)
	assert.Equal(t, 3, parallel)

	identity, err := cmd.Flags().GetString("identity")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001", identity)

	username, err := cmd.Flags().GetString("username")
	require.NoError(t, err)
	assert.Equal(t, "bob", username)
}

func TestRootCmdRejectsBadLogLevel(t *testing.T) {
	cmd := rootCmd()
	cmd.SetArgs([]string{"--log-level", "verbose"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log lvl")
}
