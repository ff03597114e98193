package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/runraisenext/internal/config"
	"github.com/mj1618/runraisenext/internal/model"
	"github.com/mj1618/runraisenext/internal/mru"
	"github.com/mj1618/runraisenext/internal/output"
	"github.com/mj1618/runraisenext/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open windows in most-recently-used order",
	Long:  "List open windows in the order the cycle decision sees them: the persisted MRU order reconciled against the live window list. Useful for writing window specs and for checking what a hotkey press would do next.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("live", false, "Show the window manager's own ordering instead of the MRU order")
}

// listEntry is the YAML output for one window.
type listEntry struct {
	model.Window `yaml:",inline"`
	Focused      bool `yaml:"focused,omitempty" json:"focused,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	live, err := provider.Querier.ListWindows()
	if err != nil {
		return err
	}

	windows := live
	if raw, _ := cmd.Flags().GetBool("live"); !raw {
		stateFile, _ := cmd.Flags().GetString("state-file")
		windows = mru.Reconcile(mru.NewStore(config.ExpandHome(stateFile)).Load(), live)
	}

	focused, _ := provider.Querier.FocusedWindow()

	entries := make([]listEntry, len(windows))
	for i, w := range windows {
		entries[i] = listEntry{Window: w, Focused: focused != nil && focused.Same(w)}
	}
	return output.Print(entries)
}
