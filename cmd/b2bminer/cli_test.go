package main_test

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/Raavan18/b2b-data-miner/cmd/b2bminer"
)

// newParser builds a Kong parser over a fresh CLI struct for parse-only
// tests.
func newParser(t *testing.T, cli *main.CLI) *kong.Kong {
	t.Helper()

	parser, err := kong.New(cli,
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	expectedCommands := []string{"mine", "runs", "show", "delete", "serve"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_MineParsing(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		_, err := newParser(t, cli).Parse([]string{"mine", "acmecorp.com"})

		require.NoError(t, err)
		assert.Equal(t, "acmecorp.com", cli.Mine.Domain)
		assert.Empty(t, cli.Mine.CompanyName)
		assert.Equal(t, "zenrows", cli.Mine.Fetcher)
		assert.Equal(t, 4, cli.Mine.Concurrency)
		assert.Zero(t, cli.Mine.MaxFetch)
		assert.False(t, cli.Mine.SeedPaths)
	})

	t.Run("parses optional company name and flags", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		_, err := newParser(t, cli).Parse([]string{
			"mine", "acmecorp.com", "Acme Corp",
			"--fetcher", "http",
			"-c", "8",
			"--max-fetch", "5",
			"--seed-paths",
			"--out", "reports",
			"--no-save",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", cli.Mine.CompanyName)
		assert.Equal(t, "http", cli.Mine.Fetcher)
		assert.Equal(t, 8, cli.Mine.Concurrency)
		assert.Equal(t, 5, cli.Mine.MaxFetch)
		assert.True(t, cli.Mine.SeedPaths)
		assert.Equal(t, "reports", cli.Mine.Out)
		assert.True(t, cli.Mine.NoSave)
	})

	t.Run("rejects unknown fetcher backends", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		_, err := newParser(t, cli).Parse([]string{"mine", "acmecorp.com", "--fetcher", "bogus"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of")
	})

	t.Run("requires a domain argument", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		_, err := newParser(t, cli).Parse([]string{"mine"})

		require.Error(t, err)
	})
}

func TestCLI_RunsParsing(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	_, err := newParser(t, cli).Parse([]string{"runs", "--domain", "acmecorp.com", "--limit", "5", "--offset", "10"})

	require.NoError(t, err)
	assert.Equal(t, "acmecorp.com", cli.Runs.Domain)
	assert.Equal(t, 5, cli.Runs.Limit)
	assert.Equal(t, 10, cli.Runs.Offset)
}
