// Package main implements the notesum CLI, which runs the local meeting
// summarizer on a file or stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notesum",
		Short: "Summarize meeting notes locally",
		Long: `notesum turns free-form meeting notes into a structured summary with
topics, decisions and action items. It runs the deterministic local pipeline
only and never contacts a remote provider.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSummarizeCmd())
	root.AddCommand(newRenderCmd())
	return root
}

// readInput reads the named file, or stdin when the name is "-" or absent.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
