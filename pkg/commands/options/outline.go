package options

import (
	"github.com/spf13/cobra"
)

// OutlineOptions
type OutlineOptions struct {
	Tree bool
}

func AddOutlineArgs(cmd *cobra.Command, o *OutlineOptions) {
	cmd.Flags().BoolVarP(&o.Tree, "tree", "t", false,
		"Print the menu as an indented tree.")
}
