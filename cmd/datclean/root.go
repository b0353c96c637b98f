package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var opts cleanOptions

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "datclean",
		Short: "Filter a download URL list against a ROM dat file",
		Long: `datclean keeps the URLs whose file name matches an entry of a ROM
management dat file and drops the rest.

Names are compared after percent-decoding the URL and lowercasing both sides,
with an archive extension appended to the catalog name so "Game" never matches
"Game 2.zip". Any other punctuation difference (for example a colon in the dat
name that the URL omits) rejects the URL.

Three files are written: the kept list (<out>.txt), the rejected URL log, and
the list of dat entries no URL matched.`,
		Example:       "  datclean -i urls.txt -d psx.dat -o psx_downloads",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, ctx, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.urlList, "input_url_list", "i", "", "URL list to filter, one URL per line (or a saved HTML listing)")
	flags.StringVarP(&opts.catalog, "input_dat", "d", "", "ROM management dat file")
	flags.StringVarP(&opts.out, "out", "o", defaultOutBasename, "Base name of the kept URL list")
	flags.StringVar(&opts.format, "format", "", "URL list format: auto, lines, or html (default from config)")
	flags.StringVar(&opts.baseURL, "base-url", "", "Base URL for resolving relative links in HTML input")
	flags.StringSliceVar(&opts.extensions, "ext", nil, "Archive extension to try after each dat name (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Match and summarize without writing any files")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print the run summary as JSON")
	_ = rootCmd.MarkFlagRequired("input_url_list")
	_ = rootCmd.MarkFlagRequired("input_dat")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
