package cmd

import (
	"fmt"
	"os"

	"github.com/Neixam/smalljs/parser"
	"github.com/Neixam/smalljs/sjs"
	"github.com/spf13/cobra"
)

var runExpression bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run smalljs code",
	Long:  `Run smalljs code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		for i := range sources {
			script, err := parser.Parse(sources[i])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := sjs.Interpret(script, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	},
}

func runReadSources(args []string) ([][]byte, error) {
	sources := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			sources[i] = []byte(args[i])
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = b
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as smalljs statements")
}
