package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	addWatchFlags(cmd.Flags())
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestWatchFlags_OnlyChangedAreSet(t *testing.T) {
	wf := watchFlags(newFlagCmd(t))
	assert.Nil(t, wf.Depth)
	assert.Nil(t, wf.WatchArrays)
	assert.Nil(t, wf.NoProps)
	assert.Empty(t, wf.Props)

	wf = watchFlags(newFlagCmd(t, "--depth=-1", "--watch-arrays", "--prop", "a", "--prop", "b", "--options", "o.yaml"))
	require.NotNil(t, wf.Depth)
	assert.Equal(t, -1, *wf.Depth)
	require.NotNil(t, wf.WatchArrays)
	assert.True(t, *wf.WatchArrays)
	assert.Nil(t, wf.TraverseArrays)
	assert.Equal(t, []string{"a", "b"}, wf.Props)
	assert.Equal(t, "o.yaml", wf.OptionsFile)
}

func TestCommandsRegistered(t *testing.T) {
	for _, name := range []string{"run", "inspect", "serve", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
