package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeFlag(t *testing.T) {
	got, err := parseTimeFlag("start", "")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	got, err = parseTimeFlag("start", "2025-03-01T09:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())

	_, err = parseTimeFlag("end", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--end")
}

func TestSeedEventCmd_RequiresEventID(t *testing.T) {
	cmd := seedEventCmd()
	flag := cmd.Flags().Lookup("event-id")
	require.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])

	name := cmd.Flags().Lookup("name")
	require.NotNil(t, name)
	assert.Equal(t, "RUNERA Genesis 10K", name.DefValue)
}
