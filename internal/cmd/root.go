package cmd

import (
	"fmt"
	"os"

	"github.com/cheerioskun/slotpick/internal/config"
	"github.com/cheerioskun/slotpick/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string

	// settings is loaded once per invocation by the root pre-run hook
	settings *config.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slotpick",
	Short: "Pick a time slot on a terminal timeline",
	Long: `slotpick lays an hour window out as a horizontal timeline and lets you drag
and resize a selection box onto one of the allowed ranges from your config.

Examples:
  slotpick init
  slotpick pick
  slotpick inspect --width 120
  slotpick pick --config ./team-slots.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute adds all child commands to the root command and runs it
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./slotpick.yaml or $HOME/.config/slotpick/slotpick.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default "+utils.DefaultLogPath+")")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
}

func loadSettings(cmd *cobra.Command, args []string) error {
	// init only writes a file and must work without a valid config
	if cmd == initCmd {
		return nil
	}

	s, err := config.Load(afero.NewOsFs(), viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	settings = s

	path := s.LogFile
	if path == "" {
		path = utils.DefaultLogPath
	}
	utils.Init(path, viper.GetBool("verbose"))
	utils.Debug("loaded config %q: %d allowed ranges", viper.ConfigFileUsed(), len(s.Timeline.AllowedRanges))

	return nil
}
