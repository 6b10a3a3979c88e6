package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/trustme000777/niftymenu/pkg/prefs"
	"github.com/trustme000777/niftymenu/pkg/runner/settings"
	"github.com/trustme000777/niftymenu/pkg/store"
)

func addPrefs(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change the persisted display preferences.",
		Example: `
niftymenu prefs list
niftymenu prefs get darkMode
niftymenu prefs set darkMode=1 arrowStyle=circle
`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every preference.",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cmd.SilenceUsage = true
				s, err := loadSettings()
				if err != nil {
					return oo.HandleError(err)
				}
				return oo.HandleError(s.List(context.Background()))
			},
		},
		&cobra.Command{
			Use:       "get <key>...",
			Short:     "Print the named preferences.",
			Args:      cobra.MinimumNArgs(1),
			ValidArgs: prefs.Keys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				s, err := loadSettings()
				if err != nil {
					return oo.HandleError(err)
				}
				return oo.HandleError(s.Get(context.Background(), args...))
			},
		},
		&cobra.Command{
			Use:   "set <key>=<value>...",
			Short: base.Wrap80("Change preferences. Booleans accept 1/0 or yes/no; arrowStyle is arrow or circle."),
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cmd.SilenceUsage = true
				changes, err := parseAssignments(args)
				if err != nil {
					return oo.HandleError(err)
				}
				s, err := loadSettings()
				if err != nil {
					return oo.HandleError(err)
				}
				return oo.HandleError(s.Set(context.Background(), changes))
			},
		},
	)
	for _, c := range cmd.Commands() {
		base.AddOutputArg(c, oo)
	}

	topLevel.AddCommand(cmd)
}

func loadSettings() (*settings.Settings, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := prefs.Open(cfg.PrefsPath())
	if err != nil {
		return nil, err
	}
	return &settings.Settings{Store: p, JSON: oo.JSON}, nil
}

func parseAssignments(args []string) (map[string]interface{}, error) {
	changes := make(map[string]interface{}, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("prefs: expected key=value, got %q", arg)
		}
		changes[key] = value
	}
	return changes, nil
}
