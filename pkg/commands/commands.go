package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/trustme000777/niftymenu/pkg/app"
	"github.com/trustme000777/niftymenu/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "niftymenu",
		Short: base.Wrap80("Searchable cheatsheet menus with callouts, on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("menu", "", "Markdown cheatsheet to load (defaults to the built-in menu).")
	cmd.PersistentFlags().Bool("typos", false, "Fall back to edit-distance matching when fuzzy search finds nothing.")
	_ = viper.BindPFlag("menu", cmd.PersistentFlags().Lookup("menu"))
	_ = viper.BindPFlag("search.typos", cmd.PersistentFlags().Lookup("typos"))

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addFind(topLevel)
	addIndex(topLevel)
	addPrefs(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func loadService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return app.Load(cfg)
}
