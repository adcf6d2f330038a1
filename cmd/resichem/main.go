// Package main provides the resichem binary entry point.
// Resichem exposes the protein residue/atom chemistry reference tables
// for lookup from the command line, mainly to debug residue and atom
// identifiers coming out of structure parsing pipelines.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proteingraph/resichem/chem"
	"github.com/proteingraph/resichem/config"
)

const (
	Version = "0.1.0"
	appName = "resichem"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		format     string
		scale      string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Protein chemistry reference tables",
		Long: `Resichem exposes reference tables for protein structural
bioinformatics: residue and atom vocabularies, radii, masses, bond
lengths, hydrogen-bond capacities, physicochemical distance matrices and
per-residue scalar features in raw or standardized scale.

Lookups that fail report exactly which identifier and which table could
not be resolved, to help debug malformed residue/atom names coming from
upstream structure parsing.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&format, "format", "", "Output format (text, json); overrides config")
	cmd.PersistentFlags().StringVar(&scale, "scale", "", "Scalar table scale (raw, standardized); overrides config")

	loadCfg := func() (*config.Config, error) {
		configureLogging(logLevel)
		loader := config.NewLoader(slog.Default())
		var (
			cfg *config.Config
			err error
		)
		if configPath != "" {
			cfg, err = loader.LoadFrom(configPath)
		} else {
			cfg, err = loader.Load()
		}
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if format != "" {
			cfg.Output.Format = format
		}
		if scale != "" {
			cfg.Lookup.Scale = config.Scale(scale)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}

	cmd.AddCommand(tablesCmd(loadCfg))
	cmd.AddCommand(lookupCmd(loadCfg))
	cmd.AddCommand(standardizeCmd(loadCfg))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func tablesCmd(loadCfg func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List available reference tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}

			infos := chem.Tables()
			if cfg.Output.Format == "json" {
				return printJSON(infos)
			}
			for _, info := range infos {
				fmt.Printf("%-36s %4d entries  %s\n", info.Name, info.Len, info.Description)
			}
			return nil
		},
	}
}

func lookupCmd(loadCfg func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <table> <key>",
		Short: "Look up a key in a reference table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}
			tableName, key := args[0], args[1]

			value, err := lookupScaled(cfg, tableName, key)
			if err != nil {
				// The wrapped error already names the table and key.
				return err
			}

			if cfg.Output.Format == "json" {
				return printJSON(map[string]string{
					"table": tableName,
					"key":   key,
					"value": value,
				})
			}
			fmt.Println(value)
			return nil
		},
	}
}

func standardizeCmd(loadCfg func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "standardize <table> [key]",
		Short: "Print a scalar table (or one entry) in standardized form",
		Long: `Standardize prints the zero-mean/unit-variance form of a scalar
reference table (chem.isoelectric_points or chem.molecular_weights).
The standardized tables are computed once per process and cached, so
repeated invocations print bit-identical values.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCfg()
			if err != nil {
				return err
			}

			std, ok := chem.StandardizedTable(args[0])
			if !ok {
				return fmt.Errorf("table %q is not a scalar table; use chem.isoelectric_points or chem.molecular_weights", args[0])
			}

			if len(args) == 2 {
				v, err := std.Lookup(args[1])
				if err != nil {
					return err
				}
				return printScalar(cfg, std.Name(), args[1], v)
			}

			if cfg.Output.Format == "json" {
				return printJSON(std.Entries())
			}
			for _, key := range std.Keys() {
				v, _ := std.Lookup(key)
				fmt.Printf("%-4s %s\n", key, formatFloat(cfg, v))
			}
			return nil
		},
	}
}

func lookupScaled(cfg *config.Config, tableName, key string) (string, error) {
	if cfg.Lookup.Scale == config.ScaleStandardized {
		if std, ok := chem.StandardizedTable(tableName); ok {
			v, err := std.Lookup(key)
			if err != nil {
				return "", err
			}
			return formatFloat(cfg, v), nil
		}
		slog.Debug("Table has no standardized form, using raw scale",
			slog.String("table", tableName))
	}
	return chem.LookupValue(tableName, key)
}

func printScalar(cfg *config.Config, tableName, key string, v float64) error {
	if cfg.Output.Format == "json" {
		return printJSON(map[string]any{
			"table": tableName,
			"key":   key,
			"value": v,
		})
	}
	fmt.Println(formatFloat(cfg, v))
	return nil
}

func formatFloat(cfg *config.Config, v float64) string {
	prec := -1
	if cfg.Output.Precision > 0 {
		prec = cfg.Output.Precision
	}
	return strconv.FormatFloat(v, 'g', prec, 64)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
