// Package main is the entry point for the randkit CLI.
// randkit generates random test values from a YAML spec file, for
// eyeballing distributions and seeding test fixtures.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nomagicln/randkit/pkg/random"
	"github.com/nomagicln/randkit/pkg/specfile"
)

// Build information, set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "randkit",
		Short:         "Generate random test values from a spec file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newGenCmd() *cobra.Command {
	var specPath string
	var countOverride int

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate values described by a spec file and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("count") && countOverride <= 0 {
				return fmt.Errorf("count override must be greater than zero, got %d", countOverride)
			}
			doc, err := specfile.Load(specPath)
			if err != nil {
				return err
			}
			if countOverride > 0 {
				doc.Count = countOverride
				doc.MinCount, doc.MaxCount = 0, 0
			}
			return generate(cmd.OutOrStdout(), doc)
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "path to the YAML spec file")
	cmd.Flags().IntVar(&countOverride, "count", 0, "override the spec's count")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "randkit %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

// generate prints one value per line for the document's kind.
func generate(out io.Writer, doc *specfile.Document) error {
	switch doc.Kind {
	case "int":
		spec, err := doc.IntSpec()
		if err != nil {
			return err
		}
		seq, err := random.Ints(spec)
		if err != nil {
			return err
		}
		for v := range seq {
			fmt.Fprintln(out, v)
		}
	case "int64":
		spec, err := doc.Int64Spec()
		if err != nil {
			return err
		}
		seq, err := random.Int64s(spec)
		if err != nil {
			return err
		}
		for v := range seq {
			fmt.Fprintln(out, v)
		}
	case "string":
		spec, err := doc.StringSpec()
		if err != nil {
			return err
		}
		seq, err := random.Strings(spec)
		if err != nil {
			return err
		}
		for v := range seq {
			fmt.Fprintln(out, v)
		}
	default:
		return fmt.Errorf("unknown spec kind '%s' (want int, int64 or string)", doc.Kind)
	}
	return nil
}
