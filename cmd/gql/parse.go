package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/arbograph/gql"
	"github.com/arbograph/gql/gqlerr"
)

func parseCommand() *cli.Command {
	cfg := loadConfigWithDir(".")
	flags := queryFlags(cfg)
	flags = append(flags, formatFlag(cfg))
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a query and print its Abstract Query Tree",
		ArgsUsage: "[query]",
		Flags:     flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			query, err := readQueryArg(cmd)
			if err != nil {
				return err
			}

			dialect := gql.Dialect(cmd.String("dialect"))
			tree, err := gql.Parse(query, dialect)
			if err != nil {
				return reportParseError(query, err)
			}

			return printAQT(tree, cmd.String("format"))
		},
	}
}

func printAQT(tree *gql.AQT, format string) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(tree)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	return nil
}

// reportParseError logs and prints a structured error, returning a
// cli.Exit value carrying the process's exit code: 2 for a dialect or
// grammar rejection, 1 for anything else (§7 policy).
func reportParseError(query string, err error) error {
	var gerr *gql.Error
	if errors.As(err, &gerr) {
		logRejection(newLogger(), query, gerr)
		fmt.Fprintln(os.Stderr, gerr.Error())
		code := 1
		switch gerr.Kind {
		case gqlerr.DialectFeatureError, gqlerr.UnexpectedToken:
			code = 2
		}
		return cli.Exit("", code)
	}
	fmt.Fprintln(os.Stderr, err)
	return cli.Exit("", 1)
}
