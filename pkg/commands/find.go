package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/trustme000777/niftymenu/pkg/commands/options"
	"github.com/trustme000777/niftymenu/pkg/runner/find"
)

func addFind(topLevel *cobra.Command) {
	fo := &options.FindOptions{}

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: base.Wrap80("Resolve a query to the best matching menu item. Hierarchy levels are separated by '/' or '>'."),
		Example: `
niftymenu find "insert>toc"
niftymenu find --all copy
niftymenu find --click "format/text/bold"
niftymenu find --click --force
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return pathCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return oo.HandleError(err)
			}
			f := find.Find{
				Service:     svc,
				Query:       strings.Join(args, " "),
				All:         fo.All,
				Click:       fo.Click,
				DoubleClick: fo.DoubleClick,
				Force:       fo.Force,
				JSON:        oo.JSON,
			}
			err = f.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddFindArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
