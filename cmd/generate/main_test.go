package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"answersite/internal/cli"
	"answersite/internal/testutil"
)

func run(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stderr bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)
	return cli.Execute(cmd), stderr.String()
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	for _, key := range []string{"CONFIG_FILE", "BASE_URL", "KEYWORDS_PATH", "METRICS_PATH", "SITE_DIR", "METRICS_DATABASE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	return dir
}

func TestGenerateCommand_Defaults(t *testing.T) {
	dir := isolate(t)
	testutil.WriteKeywordsCSV(t, filepath.Join(dir, "data"), testutil.Keyword("alpha"))

	code, stderr := run(t)
	require.Equal(t, 0, code, stderr)

	robots, err := os.ReadFile(filepath.Join(dir, "site", "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://example.com/sitemap.xml")
	assert.FileExists(t, filepath.Join(dir, "site", "alpha", "index.html"))
	assert.Contains(t, stderr, "run_id=")
}

func TestGenerateCommand_Overrides(t *testing.T) {
	dir := isolate(t)
	kw := testutil.WriteKeywordsCSV(t, dir, testutil.Keyword("alpha"))
	out := filepath.Join(dir, "public")

	code, stderr := run(t, "--keywords", kw, "--out", out, "--base-url", "https://answers.example.org/", "--log-level", "error")
	require.Equal(t, 0, code, stderr)

	robots, err := os.ReadFile(filepath.Join(out, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://answers.example.org/sitemap.xml")
	assert.Empty(t, stderr)
}

func TestGenerateCommand_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) []string
		wantErr string
	}{
		{
			name: "duplicate slug",
			setup: func(t *testing.T, dir string) []string {
				kw := testutil.WriteKeywordsCSV(t, dir, testutil.Keyword("a"), testutil.Keyword("a"))
				return []string{"--keywords", kw}
			},
			wantErr: `duplicate slug "a"`,
		},
		{
			name: "missing keywords",
			setup: func(t *testing.T, dir string) []string {
				return []string{"--keywords", filepath.Join(dir, "none.csv")}
			},
			wantErr: "open",
		},
		{
			name: "invalid base url",
			setup: func(t *testing.T, dir string) []string {
				return []string{"--base-url", "example.com"}
			},
			wantErr: "base URL",
		},
		{
			name: "unexpected argument",
			setup: func(t *testing.T, dir string) []string {
				return []string{"extra"}
			},
			wantErr: "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			code, stderr := run(t, tt.setup(t, dir)...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.wantErr)
			assert.NoDirExists(t, filepath.Join(dir, "site"))
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
