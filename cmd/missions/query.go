package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	domainerrors "github.com/leengari/space-missions/internal/domain/errors"
	"github.com/leengari/space-missions/internal/engine"
	"github.com/leengari/space-missions/internal/validation"
)

// queryFunc runs one engine operation and returns the value to print
type queryFunc func(cmd *cobra.Command, eng *engine.Engine, args []string) (any, error)

func newQueryCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a single query against the dataset and print the result",
	}
	cmd.PersistentFlags().StringVar(&format, "format", "json", "output format: json or yaml")

	wrap := func(fn queryFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			defer a.close()
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q, expected json or yaml", format)
			}
			eng, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			result, err := fn(cmd, eng, args)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), format, result)
		}
	}

	var topN int
	top := &cobra.Command{
		Use:   "top-companies",
		Short: "Companies ranked by mission count",
		Args:  cobra.NoArgs,
		RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, _ []string) (any, error) {
			return eng.TopCompanies(cmd.Context(), topN)
		}),
	}
	top.Flags().IntVarP(&topN, "n", "n", 10, "number of companies")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "summary",
			Short: "Total, success rate and top company",
			Args:  cobra.NoArgs,
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, _ []string) (any, error) {
				return eng.Summary(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "mission-count COMPANY",
			Short: "Number of missions flown by a company",
			Args:  cobra.ExactArgs(1),
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, args []string) (any, error) {
				count, err := eng.MissionCount(cmd.Context(), args[0])
				return map[string]any{"company": args[0], "count": count}, err
			}),
		},
		&cobra.Command{
			Use:   "success-rate COMPANY",
			Short: "Success percentage of a company's missions",
			Args:  cobra.ExactArgs(1),
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, args []string) (any, error) {
				rate, err := eng.SuccessRate(cmd.Context(), args[0])
				return map[string]any{"company": args[0], "successRate": rate}, err
			}),
		},
		&cobra.Command{
			Use:   "search START END",
			Short: "Mission names launched between two YYYY-MM-DD dates (inclusive)",
			Args:  cobra.ExactArgs(2),
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, args []string) (any, error) {
				missions, err := eng.MissionsByDateRange(cmd.Context(), args[0], args[1])
				return map[string]any{"missions": missions}, err
			}),
		},
		top,
		&cobra.Command{
			Use:   "status-distribution",
			Short: "Mission counts per outcome",
			Args:  cobra.NoArgs,
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, _ []string) (any, error) {
				return eng.StatusCount(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:   "missions-by-year YEAR",
			Short: "Number of missions launched in a year",
			Args:  cobra.ExactArgs(1),
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, args []string) (any, error) {
				year, err := yearArg("year", args[0])
				if err != nil {
					return nil, err
				}
				count, err := eng.MissionsByYear(cmd.Context(), year)
				return map[string]any{"year": year, "count": count}, err
			}),
		},
		&cobra.Command{
			Use:   "most-used-rocket",
			Short: "Most frequently flown rocket",
			Args:  cobra.NoArgs,
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, _ []string) (any, error) {
				rocket, err := eng.MostUsedRocket(cmd.Context())
				return map[string]string{"rocket": rocket}, err
			}),
		},
		&cobra.Command{
			Use:   "average-per-year START_YEAR END_YEAR",
			Short: "Average missions per year over an inclusive range",
			Args:  cobra.ExactArgs(2),
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, args []string) (any, error) {
				startYear, err := yearArg("startYear", args[0])
				if err != nil {
					return nil, err
				}
				endYear, err := yearArg("endYear", args[1])
				if err != nil {
					return nil, err
				}
				avg, err := eng.AverageMissionsPerYear(cmd.Context(), startYear, endYear)
				return map[string]any{"average": avg, "startYear": startYear, "endYear": endYear}, err
			}),
		},
		&cobra.Command{
			Use:   "timeline",
			Short: "Missions per year",
			Args:  cobra.NoArgs,
			RunE: wrap(func(cmd *cobra.Command, eng *engine.Engine, _ []string) (any, error) {
				return eng.Timeline(cmd.Context())
			}),
		},
	)

	return cmd
}

func writeResult(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// yearArg applies the same year rules as the HTTP boundary
func yearArg(name, raw string) (int, error) {
	year, err := validation.ParseYear(raw)
	if err != nil {
		return 0, domainerrors.NewInputError(name, raw, err.Error())
	}
	return year, nil
}
