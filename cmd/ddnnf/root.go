// Copyright (c) 2024
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	ddnnf "github.com/MaxMichelutti/dDNNF-Query"
)

var rootCmd = &cobra.Command{
	Use:                "ddnnf",
	Short:              "Condition and convert deterministic decomposable negation normal form graphs",
	Long:               usageText,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func runRoot(cmd *cobra.Command, argv []string) error {
	args, err := parseArgs(argv)
	if err == errHelp {
		fmt.Print(usageText)
		return nil
	}
	if err != nil {
		return err
	}
	return run(args)
}

func run(args *cliArgs) error {
	g, err := readGraph(args.InputPath, args.InputFormat)
	if err != nil {
		return err
	}
	if len(args.Conditions) > 0 {
		if err := g.ConditionAll(args.Conditions); err != nil {
			return err
		}
	}
	if args.OutputPath != "" {
		if err := writeGraph(g, args.OutputPath, args.OutputFormat); err != nil {
			return err
		}
	}
	return nil
}

func readGraph(path, format string) (*ddnnf.Graph, error) {
	switch format {
	case "ddnnf":
		return ddnnf.ReadDDNNF(path)
	case "c2d":
		return ddnnf.ReadC2D(path)
	case "d4":
		return ddnnf.ReadD4(path)
	default:
		return nil, newUsageError("unknown input format %q", format)
	}
}

func writeGraph(g *ddnnf.Graph, path, format string) error {
	switch format {
	case "ddnnf":
		return ddnnf.WriteDDNNF(g, path)
	case "c2d":
		return ddnnf.WriteC2D(g, path)
	case "d4":
		return ddnnf.WriteD4(g, path)
	default:
		return newUsageError("unknown output format %q", format)
	}
}

// Execute runs the root command, coloring any fatal error red on stderr
// before exiting 1, matching this ecosystem's convention of colorizing CLI
// diagnostics rather than the library's own plain error strings.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
