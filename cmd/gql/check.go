package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/arbograph/gql"
)

// checkCommand parses a query and reports only pass/fail, for use in
// scripts and pre-commit hooks: no AQT on stdout, a structured error on
// stderr, exit code from reportParseError on failure.
func checkCommand() *cli.Command {
	cfg := loadConfigWithDir(".")
	return &cli.Command{
		Name:      "check",
		Usage:     "parse a query and report only pass/fail",
		ArgsUsage: "[query]",
		Flags:     queryFlags(cfg),
		Action: func(_ context.Context, cmd *cli.Command) error {
			query, err := readQueryArg(cmd)
			if err != nil {
				return err
			}

			dialect := gql.Dialect(cmd.String("dialect"))
			if _, err := gql.Parse(query, dialect); err != nil {
				return reportParseError(query, err)
			}

			fmt.Println("ok")
			return nil
		},
	}
}
