package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/trustme000777/niftymenu/pkg/commands/options"
	"github.com/trustme000777/niftymenu/pkg/runner/outline"
)

func addIndex(topLevel *cobra.Command) {
	lo := &options.OutlineOptions{}

	cmd := &cobra.Command{
		Use:     "index",
		Aliases: []string{"ls"},
		Short:   "List every searchable menu path in menu order.",
		Example: `
niftymenu index
niftymenu index --tree
niftymenu index --json
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			o := outline.Outline{
				Service: svc,
				Tree:    lo.Tree,
				JSON:    oo.JSON,
			}
			err = o.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutlineArgs(cmd, lo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
