// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// FindOptions selects how a query is resolved.
type FindOptions struct {
	All         bool
	Click       bool
	DoubleClick bool
	Force       bool
}

// AddFindArgs wires the query flags on the provided command.
func AddFindArgs(cmd *cobra.Command, o *FindOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"List every match, best first.")
	cmd.Flags().BoolVar(&o.Click, "click", false,
		"Click the match and print the clicked path.")
	cmd.Flags().BoolVar(&o.DoubleClick, "double-click", false,
		"Double-click the match, emphasizing it.")
	cmd.Flags().BoolVar(&o.Force, "force", false,
		"With --click, click the background and clear every callout.")
}
