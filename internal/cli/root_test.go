package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})
	require.NotNil(t, cmd)
	assert.Equal(t, "storefront", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})
	commands := [][]string{
		{"serve"},
		{"migrate"},
		{"seed"},
		{"user", "create"},
		{"user", "delete"},
		{"product", "delete"},
		{"version"},
	}

	for _, path := range commands {
		t.Run(path[len(path)-1], func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			assert.Equal(t, path[len(path)-1], subCmd.Name())
		})
	}
}

func TestUserCreateFlags(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})
	createCmd, _, err := cmd.Find([]string{"user", "create"})
	require.NoError(t, err)

	for _, name := range []string{"name", "email"} {
		flag := createCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{Version: "1.2.3", Date: "2024-01-02", Commit: "abc123"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())

	newGoldie(t).Assert(t, "version", out.Bytes())
}

func TestSeedCommand_RequiresFile(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"seed"})

	assert.Error(t, cmd.Execute())
}
