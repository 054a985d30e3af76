package root

import (
	"fmt"

	"github.com/flarebyte/tilegeo/cmd/tilegeo/run"
	"github.com/flarebyte/tilegeo/internal/buildinfo"
	"github.com/flarebyte/tilegeo/internal/logging"
	"github.com/flarebyte/tilegeo/internal/report"
	"github.com/flarebyte/tilegeo/internal/stage"
	"github.com/spf13/cobra"
)

const usageLine = "tilegeo <path to tileset.json>"

// NewRootCmd creates the tilegeo command.
func NewRootCmd() *cobra.Command {
	var (
		format string
		parsed report.Format
	)

	cmd := &cobra.Command{
		Use:   usageLine,
		Short: "Print the geodetic position of a 3D Tiles tileset root transform",
		Long: `tilegeo reads a 3D Tiles tileset.json, takes the translation of its
root.transform matrix as an Earth-centred position and prints it as WGS84
longitude, latitude (degrees) and height.`,
		Version: buildinfo.Summary(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &stage.UsageError{Usage: usageLine}
			}
			f, err := report.ParseFormat(format)
			if err != nil {
				return &stage.UsageError{Usage: usageLine, Reason: err.Error()}
			}
			parsed = f
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.Extract(cmd.Context(), args[0], run.Options{
				Format: parsed,
				Stdout: cmd.OutOrStdout(),
				Logger: logging.NewFromEnv(cmd.ErrOrStderr()),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("tilegeo {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &stage.UsageError{Usage: usageLine, Reason: fmt.Sprintf("%v (usage: %s)", err, usageLine)}
	})
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "Output format: text|json|yaml")

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
