package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/runraisenext/internal/config"
	"github.com/mj1618/runraisenext/internal/model"
	"github.com/mj1618/runraisenext/internal/output"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "List the aliases defined in the aliases file",
	RunE:  runAliases,
}

func init() {
	rootCmd.AddCommand(aliasesCmd)
}

// aliasEntry is the YAML output for one alias.
type aliasEntry struct {
	Alias string           `yaml:"alias" json:"alias"`
	Spec  model.WindowSpec `yaml:"spec"  json:"spec"`
}

func runAliases(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	specs, err := config.Load(file)
	if err != nil {
		return err
	}

	entries := make([]aliasEntry, 0, len(specs))
	for _, name := range config.Names(specs) {
		entries = append(entries, aliasEntry{Alias: name, Spec: specs[name]})
	}
	return output.Print(entries)
}
