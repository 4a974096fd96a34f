package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arbograph/gql/config"
)

// rootCommand assembles the gql CLI: parse prints a query's AQT, check
// reports pass/fail for scripting. Both read .gql.yaml defaults before
// applying flag overrides (parse: dialect and format; check: dialect),
// mirroring the teacher's loadConfigWithDir convention.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "gql",
		Usage: "parse GQL queries into their Abstract Query Tree",
		Commands: []*cli.Command{
			parseCommand(),
			checkCommand(),
		},
	}
}

func dialectFlag(cfg *config.Config) *cli.StringFlag {
	def := "default"
	if cfg != nil && cfg.Dialect != "" {
		def = cfg.Dialect
	}
	return &cli.StringFlag{
		Name:    "dialect",
		Aliases: []string{"d"},
		Usage:   "grammar dialect: v1_9, v2_0, or default",
		Value:   def,
		Sources: cli.EnvVars("GQL_DIALECT"),
	}
}

func formatFlag(cfg *config.Config) *cli.StringFlag {
	def := "json"
	if cfg != nil && cfg.Format != "" {
		def = cfg.Format
	}
	return &cli.StringFlag{
		Name:  "format",
		Usage: "output format: json or yaml",
		Value: def,
	}
}

// loadConfigWithDir walks up from dir looking for .gql.yaml, returning nil
// (not an error) when none exists. A config file that exists but fails to
// read or parse is reported to stderr rather than silently ignored, since
// that's a user mistake worth surfacing, not an absent-file default.
func loadConfigWithDir(dir string) *config.Config {
	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "gql: ignoring .gql.yaml: %v\n", err)
		}
		return nil
	}
	return cfg
}

func readQueryArg(cmd *cli.Command) (string, error) {
	if file := cmd.String("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return string(data), nil
	}
	if args := cmd.Args().Slice(); len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func queryFlags(cfg *config.Config) []cli.Flag {
	return []cli.Flag{
		dialectFlag(cfg),
		&cli.StringFlag{
			Name:  "file",
			Usage: "read the query from a file instead of an argument or stdin",
		},
	}
}
