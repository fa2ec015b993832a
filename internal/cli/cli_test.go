package cli

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverride(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	var name string
	var count int
	fs.StringVar(&name, "name", "", "")
	fs.IntVar(&count, "count", 0, "")
	require.NoError(t, fs.Parse([]string{"--count", "0"}))

	dstName, dstCount := "from-config", 7
	Override(fs, "name", &dstName, name)
	Override(fs, "count", &dstCount, count)

	assert.Equal(t, "from-config", dstName, "unset flag keeps config value")
	assert.Equal(t, 0, dstCount, "explicit zero flag wins")
}

func TestCommonFlags_Load(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("METRICS_PATH", "from-env.csv")
	t.Setenv("LOG_LEVEL", "")

	var f CommonFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--metrics-textfile", "run.prom"}))

	cfg, err := f.Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.MetricsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "run.prom", cfg.MetricsTextfile)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "run_id=")
}

func TestExecute(t *testing.T) {
	var stderr bytes.Buffer
	ok := &cobra.Command{Use: "ok", RunE: func(*cobra.Command, []string) error { return nil }}
	ok.SetArgs([]string{})
	assert.Equal(t, 0, Execute(ok))

	fail := &cobra.Command{Use: "fail", RunE: func(*cobra.Command, []string) error { return errors.New("boom") }}
	fail.SetErr(&stderr)
	fail.SetArgs([]string{})
	assert.Equal(t, 1, Execute(fail))
	assert.Equal(t, "error: boom\n", stderr.String())
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
