package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sta",
	Short: "Static timing analyzer command dispatcher",
	Long: "sta runs a sequence of timing-analysis commands (read_liberty, read_verilog,\n" +
		"read_spef, read_sdc, create_clock, set_input_delay, set_delay_calc,\n" +
		"report_checks) against one in-process analysis session.\n\n" +
		"sta is a dispatcher, not a scripting engine: it resolves each command to a\n" +
		"session operation and runs them in file order. It does not implement a\n" +
		"general expression or control-flow language.",
}

func init() {
	rootCmd.AddCommand(runCmd)
}
