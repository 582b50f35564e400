package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookshelf/internal/convert"
	"github.com/pdiddy/bookshelf/internal/report"
	"github.com/pdiddy/bookshelf/pkg/types"
)

func newConvertCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [csv-file] [output-dir]",
		Short: "Write one book document per selected catalog record",
		Long: `Convert reads a CSV catalog export (columns Title, Author, Author l-f and
Date Added are required) and writes <Title_with_underscores>.md into the
output directory for every record whose Date Added starts with the year
prefix. The output directory is created if missing and existing documents
are overwritten. With --report yaml or json, progress lines go to stderr and
stdout carries only the report.

Defaults: books.csv and _books.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := convertConfig(v, args)
			if err != nil {
				return err
			}

			// Keep stdout clean for machine-readable reports.
			progress := cmd.OutOrStdout()
			if cfg.Report != types.ReportText {
				progress = cmd.ErrOrStderr()
			}

			summary, err := convert.Convert(cmd.Context(), cfg, progress)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), summary, cfg.Report)
		},
	}

	cmd.Flags().String("year-prefix", types.DefaultYearPrefix, "select records whose Date Added starts with this prefix")
	cmd.Flags().String("on-collision", string(types.CollisionOverwrite), "filename collision policy: overwrite, fail, or suffix")
	cmd.Flags().String("report", string(types.ReportText), "summary format: text, yaml, or json")

	v.SetDefault("convert.input", types.DefaultInputPath)
	v.SetDefault("convert.output_dir", types.DefaultOutputDir)
	_ = v.BindPFlag("convert.year_prefix", cmd.Flags().Lookup("year-prefix"))
	_ = v.BindPFlag("convert.on_collision", cmd.Flags().Lookup("on-collision"))
	_ = v.BindPFlag("convert.report", cmd.Flags().Lookup("report"))

	return cmd
}

// convertConfig resolves the run settings. Positional arguments take
// precedence over config file and environment values.
func convertConfig(v *viper.Viper, args []string) (types.ConvertConfig, error) {
	cfg := types.ConvertConfig{
		InputPath:  v.GetString("convert.input"),
		OutputDir:  v.GetString("convert.output_dir"),
		YearPrefix: v.GetString("convert.year_prefix"),
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if len(args) > 1 {
		cfg.OutputDir = args[1]
	}

	policy, err := types.ParseCollisionPolicy(v.GetString("convert.on_collision"))
	if err != nil {
		return cfg, err
	}
	cfg.OnCollision = policy

	format, err := report.ParseFormat(v.GetString("convert.report"))
	if err != nil {
		return cfg, err
	}
	cfg.Report = format

	return cfg, nil
}
