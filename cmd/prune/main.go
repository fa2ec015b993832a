// Command prune writes the list of slugs whose metrics fall below the
// configured thresholds.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"answersite/internal/cli"
	"answersite/internal/jobs"
	"answersite/internal/models"
)

func main() {
	os.Exit(cli.Execute(newCommand(time.Now)))
}

func newCommand(now func() time.Time) *cobra.Command {
	var (
		common         cli.CommonFlags
		out            string
		minImpressions int64
		maxConversions int64
		minAgeDays     int
		todayFlag      string
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Write the prune list of underperforming slugs",
		Long: `Selects every metrics row with impressions >= min-impressions,
conversions <= max-conversions and last_seen_date at least min-age-days before
today, and writes the slugs one per line in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			cfg, err := common.Load(fs)
			if err != nil {
				return err
			}
			cli.Override(fs, "out", &cfg.PrunePath, out)
			cli.Override(fs, "min-impressions", &cfg.Prune.MinImpressions, minImpressions)
			cli.Override(fs, "max-conversions", &cfg.Prune.MaxConversions, maxConversions)
			cli.Override(fs, "min-age-days", &cfg.Prune.MinAgeDays, minAgeDays)
			if err := cfg.Validate(); err != nil {
				return err
			}

			today := now()
			if todayFlag != "" {
				if today, err = models.ParseDate(todayFlag); err != nil {
					return fmt.Errorf("--today: %w", err)
				}
			}

			level, _ := cfg.Level()
			log := cli.NewLogger(cmd.ErrOrStderr(), level)

			_, err = jobs.NewRunner(cfg, log, now).Prune(cmd.Context(), today)
			return err
		},
	}

	fs := cmd.Flags()
	common.Bind(fs)
	fs.StringVarP(&out, "out", "o", "", "prune list output path")
	fs.Int64Var(&minImpressions, "min-impressions", 0, "minimum impressions for a slug to be pruned")
	fs.Int64Var(&maxConversions, "max-conversions", 0, "maximum conversions for a slug to be pruned")
	fs.IntVar(&minAgeDays, "min-age-days", 0, "minimum days since last_seen_date")
	fs.StringVar(&todayFlag, "today", "", "reference date (YYYY-MM-DD), defaults to the current date")

	return cmd
}
