package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chaos-io/whitebg/util"
	"github.com/chaos-io/whitebg/whitebg"
)

const usage = "Usage: whitebg <input_path> <output_path>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whitebg <input_path> <output_path>",
		Short: "Make the white background of an image transparent and trim it",
		// Every token is positional, "-h" included.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return whitebg.UsageError(fmt.Sprintf("expected 2 arguments, got %d", len(args)))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer util.Trace("remove white background")()

			input, output := args[0], args[1]
			if _, err := whitebg.RemoveWhiteBackground(input, output, whitebg.DefaultThreshold); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully saved transparent logo to %s\n", output)
			return nil
		},
	}
}

// run executes the command and returns the process exit code.
func run(args []string, stdout io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	switch whitebg.KindOf(err) {
	case whitebg.KindUsage:
		_, _ = fmt.Fprintln(stdout, usage)
	default:
		_, _ = fmt.Fprintf(stdout, "Error processing image: %v\n", err)
	}
	return 1
}
