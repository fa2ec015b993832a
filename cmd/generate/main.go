// Command generate renders the static answer site from the keyword and
// metrics inputs.
package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"answersite/internal/cli"
	"answersite/internal/jobs"
)

func main() {
	os.Exit(cli.Execute(newCommand()))
}

func newCommand() *cobra.Command {
	var (
		common   cli.CommonFlags
		baseURL  string
		keywords string
		out      string
		popular  int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the static answer site",
		Long: `Reads the keywords and metrics inputs and writes index.html, one
<slug>/index.html per keyword, sitemap.xml and robots.txt to the site directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fs := cmd.Flags()
			cfg, err := common.Load(fs)
			if err != nil {
				return err
			}
			cli.Override(fs, "base-url", &cfg.BaseURL, baseURL)
			cli.Override(fs, "keywords", &cfg.KeywordsPath, keywords)
			cli.Override(fs, "out", &cfg.SiteDir, out)
			cli.Override(fs, "popular", &cfg.PopularCount, popular)
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, _ := cfg.Level()
			log := cli.NewLogger(cmd.ErrOrStderr(), level)

			_, err = jobs.NewRunner(cfg, log, time.Now).Generate(cmd.Context())
			return err
		},
	}

	fs := cmd.Flags()
	common.Bind(fs)
	fs.StringVar(&baseURL, "base-url", "", "absolute site origin used in canonical, sitemap and robots links")
	fs.StringVar(&keywords, "keywords", "", "keywords CSV path")
	fs.StringVarP(&out, "out", "o", "", "output directory")
	fs.IntVar(&popular, "popular", 0, "number of popular answers on the index page (0 disables)")

	return cmd
}
