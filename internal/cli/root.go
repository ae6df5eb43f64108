package cli

import (
	"fmt"

	"github.com/mgpai22/vtt2csv/internal/logging"
	"github.com/mgpai22/vtt2csv/internal/subtitle"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vtt2csv",
		Short: "Convert WebVTT subtitles to CSV",
		Long: `vtt2csv reads a WebVTT document from standard input and writes
one CSV row per cue to standard output.

Columns are id, start, end and text. Times are written in milliseconds.

Examples:
  vtt2csv < captions.vtt > captions.csv
  cat captions.vtt | vtt2csv -v`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(verbose)
		},
		RunE: runConvert,
	}

	cmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func Execute() error {
	return execute(rootCmd)
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), subtitle.Describe(err))
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func runConvert(cmd *cobra.Command, args []string) error {
	converter := subtitle.NewConverter(logger)

	rows, err := converter.Convert(cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		if kind, ok := subtitle.KindOf(err); ok {
			logger.Debugw("Conversion failed",
				"kind", kind.String(),
				"rows_written", rows,
			)
		}
		return err
	}

	logger.Debugw("Conversion complete", "rows", rows)
	return nil
}
