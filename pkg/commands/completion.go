package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(niftymenu completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(niftymenu completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// pathCompletions offers the menu paths starting with toComplete, ignoring
// case.
func pathCompletions(toComplete string) []string {
	svc, err := loadService()
	if err != nil {
		return nil
	}
	paths, err := svc.Index.Paths()
	if err != nil {
		return nil
	}
	prefix := strings.ToLower(toComplete)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if strings.HasPrefix(strings.ToLower(p), prefix) {
			out = append(out, p)
		}
	}
	return out
}
