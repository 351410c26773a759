package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/lz77"
	"github.com/golang/snappy"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTokensCommand(t *testing.T) {
	out, err := run(t, "cabracadabrarrarrad", "tokens", "-")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"(0, 0, c)",
		"(0, 0, a)",
		"(0, 0, b)",
		"(0, 0, r)",
		"(3, 1, c)",
		"(2, 1, d)",
		"(7, 4, r)",
		"(3, 5, d)",
	}, "\n")+"\n", out)
}

func TestTokensCommandCharset(t *testing.T) {
	out, err := run(t, "ééé", "tokens", "--charset", "utf-8", "-")
	require.NoError(t, err)
	require.Equal(t, "(0, 0, é)\n(1, 1, é)\n", out)

	_, err = run(t, "x", "tokens", "--charset", "no-such-charset", "-")
	require.Error(t, err)
}

func TestTokensCommandBadConfig(t *testing.T) {
	_, err := run(t, "abc", "tokens", "--window", "4", "--lookahead", "5", "-")
	var cfgErr *lz77.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, 4, cfgErr.WindowSize)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "window_size: 3\nlookahead_size: 3\n")
	out, err := run(t, "aaaa", "tokens", "--config", path, "-")
	require.NoError(t, err)
	// No search buffer: every token is a literal.
	require.Equal(t, "(0, 0, a)\n(0, 0, a)\n(0, 0, a)\n(0, 0, a)\n", out)

	// Flags override the file.
	out, err = run(t, "aaaa", "tokens", "--config", path, "--window", "13", "-")
	require.NoError(t, err)
	require.Equal(t, "(0, 0, a)\n(1, 2, a)\n", out)
}

func TestRoundtripCommand(t *testing.T) {
	path := writeFile(t, "in.txt", strings.Repeat("ababcbababaa", 20))
	out, err := run(t, "", "roundtrip", path)
	require.NoError(t, err)
	require.Contains(t, out, "240 bytes")
	require.Contains(t, out, "ok")

	_, err = run(t, "", "roundtrip", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestPackCommand(t *testing.T) {
	data := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)
	path := writeFile(t, "in.txt", data)

	out, err := run(t, "", "pack", "-f", "snappy", path)
	require.NoError(t, err)
	decoded, err := io.ReadAll(snappy.NewReader(strings.NewReader(out)))
	require.NoError(t, err)
	require.Equal(t, data, string(decoded))
	require.Less(t, len(out), len(data)/4)

	outPath := filepath.Join(t.TempDir(), "out.lz4")
	_, err = run(t, "", "pack", "-f", "lz4", "-o", outPath, path)
	require.NoError(t, err)
	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	decoded, err = io.ReadAll(lz4.NewReader(f))
	require.NoError(t, err)
	require.Equal(t, data, string(decoded))

	out, err = run(t, "", "pack", "-f", "text", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "the quick brown fox jumps over t<3,31>lazy dog.<5,14>q<"), out)

	_, err = run(t, "", "pack", "-f", "zip", path)
	require.Error(t, err)
}

func TestSweepCommand(t *testing.T) {
	path := writeFile(t, "in.txt", strings.Repeat("abcdefgh", 64))
	svg := filepath.Join(t.TempDir(), "sweep.svg")

	out, err := run(t, "", "sweep", "--min", "4", "--max", "32", "--svg", svg, path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "4\t"))
	require.True(t, strings.HasPrefix(lines[3], "32\t"))

	rendered, err := os.ReadFile(svg)
	require.NoError(t, err)
	require.Contains(t, string(rendered), "<svg")
}

func TestSweepFewerTokensWithLargerWindow(t *testing.T) {
	data := []byte(strings.Repeat("0123456789abcdef", 32))
	points, err := sweep(data, lz77.DefaultConfig(), 8, 64)
	require.NoError(t, err)
	require.Len(t, points, 4)
	// A window of 8 with lookahead 6 can't see a full 16-byte period;
	// 64 can.
	require.Greater(t, points[0].tokens, points[3].tokens)

	_, err = sweep(data, lz77.DefaultConfig(), 0, 8)
	require.Error(t, err)
}
