package commands

import (
	"github.com/spf13/cobra"

	"github.com/trustme000777/niftymenu/pkg/tui/menuview"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the menu overlay in the terminal",
		Example: `
niftymenu ui
niftymenu ui --menu ~/cheatsheets/docs.md
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService()
			if err != nil {
				return err
			}
			return menuview.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
