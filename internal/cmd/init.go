package cmd

import (
	"fmt"

	"github.com/cheerioskun/slotpick/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	outputConfig string
	force        bool
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	Long: `Write a commented sample configuration with an 08:00-09:00 window and three
allowed ranges. Edit it, then run 'slotpick pick'.

Examples:
  slotpick init
  slotpick init --output ~/.config/slotpick/slotpick.yaml
  slotpick init -o team.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	// Init-specific flags
	initCmd.Flags().StringVarP(&outputConfig, "output", "o", config.DefaultConfigName+".yaml", "output configuration file")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	return writeSample(afero.NewOsFs(), cmd, outputConfig, force)
}

func writeSample(fs afero.Fs, cmd *cobra.Command, path string, overwrite bool) error {
	if err := config.WriteSample(fs, path, overwrite); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to: %s\n", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Use 'slotpick pick --config %s' to start picking\n", path)
	return nil
}
