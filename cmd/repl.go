package cmd

import (
	"github.com/Neixam/smalljs/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Run: func(cmd *cobra.Command, args []string) {
		repl.Run(replPrompt)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVarP(&replPrompt, "prompt", "p", "sjs> ",
		"Prompt displayed before each statement")
}
