package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mj1618/runraisenext/internal/config"
	"github.com/mj1618/runraisenext/internal/engine"
	"github.com/mj1618/runraisenext/internal/model"
	"github.com/mj1618/runraisenext/internal/mru"
	"github.com/mj1618/runraisenext/internal/output"
	"github.com/mj1618/runraisenext/internal/platform"
	"github.com/mj1618/runraisenext/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "runraisenext [alias]",
	Short: "Launch an app, focus it, or cycle to its next window",
	Long: `Bind a hotkey to an app alias: one invocation launches the app when it has
no windows, focuses its most recently used window when another app is
focused, and cycles through its windows on repeated presses.

Aliases live in ` + config.DefaultFile + `, a mapping from alias name to
window spec:

  {"Firefox": {"wm_class": ".Firefox", "command": "firefox"}}

Window spec flags can be used instead of (or on top of) an alias.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoot,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("verbose", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().StringP("file", "f", config.DefaultFile, "Aliases file path")
	rootCmd.PersistentFlags().String("state-file", mru.DefaultSnapshotFile, "MRU snapshot file path")

	rootCmd.Flags().StringP("id", "i", "", "the window ID to look for, e.g. 0x0180000b")
	rootCmd.Flags().StringP("desktop", "d", "", "the desktop to look for windows on, e.g. 1")
	rootCmd.Flags().StringP("pid", "p", "", "the pid to look for, e.g. 3384")
	rootCmd.Flags().StringP("wm-class", "w", "", "the WM_CLASS to look for, e.g. Navigator.Firefox")
	rootCmd.Flags().StringP("machine", "m", "", "the client machine name to look for")
	rootCmd.Flags().StringP("title", "t", "", "the window title to look for")
	rootCmd.Flags().StringP("command", "c", "", "the command that launches the app when no window matches")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, _ := rootCmd.PersistentFlags().GetBool("pretty"); pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}

// specForInvocation builds the window spec for one run: the alias's spec
// from the aliases file (when an alias is given) with explicit flags
// overlaid on top.
func specForInvocation(cmd *cobra.Command, args []string) (model.WindowSpec, error) {
	overlay := model.WindowSpec{}
	overlay.ID, _ = cmd.Flags().GetString("id")
	overlay.Desktop, _ = cmd.Flags().GetString("desktop")
	overlay.PID, _ = cmd.Flags().GetString("pid")
	overlay.WMClass, _ = cmd.Flags().GetString("wm-class")
	overlay.Machine, _ = cmd.Flags().GetString("machine")
	overlay.Title, _ = cmd.Flags().GetString("title")
	overlay.Command, _ = cmd.Flags().GetString("command")

	if overlay.ID != "" && (overlay.Desktop != "" || overlay.PID != "" ||
		overlay.WMClass != "" || overlay.Machine != "" || overlay.Title != "") {
		return model.WindowSpec{}, fmt.Errorf("a window ID already uniquely identifies a window; --id cannot be combined with other window spec flags")
	}

	var spec model.WindowSpec
	if len(args) > 0 {
		file, _ := cmd.Flags().GetString("file")
		var err error
		spec, err = config.Resolve(args[0], file)
		if err != nil {
			return model.WindowSpec{}, err
		}
	}
	return spec.Merge(overlay), nil
}

func newRunner(provider *platform.Provider, stateFile string) *engine.Runner {
	return &engine.Runner{
		Querier: provider.Querier,
		Focuser: provider.Focuser,
		Exec:    provider.Runner,
		Store:   mru.NewStore(config.ExpandHome(stateFile)),
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	spec, err := specForInvocation(cmd, args)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	stateFile, _ := cmd.Flags().GetString("state-file")
	result, err := newRunner(provider, stateFile).Run(spec)
	if err != nil {
		return err
	}
	return output.Print(result)
}
