package cmd

import (
	"fmt"
	"io"

	"github.com/cheerioskun/slotpick/internal/timeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	inspectWidth float64
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how the configured timeline is laid out",
	Long: `Validate the configuration and display what the picker would start with:
- The hour window and tick labels
- Pixel spans of every allowed range at the given width
- The initial selection, its label and duration

Examples:
  slotpick inspect
  slotpick inspect --width 600
  slotpick inspect --config ./team-slots.yaml`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	// Inspect-specific flags
	inspectCmd.Flags().Float64Var(&inspectWidth, "width", 0, "layout width in pixels (default from config)")

	// Bind flags to viper
	viper.BindPFlag("inspect_width", inspectCmd.Flags().Lookup("width"))
}

func runInspect(cmd *cobra.Command, args []string) error {
	width := viper.GetFloat64("inspect_width")
	if width == 0 {
		width = float64(settings.Width)
	}

	engine, err := timeline.NewEngine(settings.Timeline, width)
	if err != nil {
		return fmt.Errorf("failed to build timeline: %w", err)
	}
	defer engine.Close()

	printLayout(cmd.OutOrStdout(), engine)
	return nil
}

// printLayout prints a summary of the engine's layout and initial selection
func printLayout(w io.Writer, engine *timeline.Engine) {
	cfg := engine.Config()

	fmt.Fprintln(w, "Timeline:")
	fmt.Fprintf(w, "  Window: %02d:00 - %02d:00 (%d min)\n", cfg.StartHour, cfg.EndHour, cfg.TotalMinutes())
	fmt.Fprintf(w, "  Width: %.2f px (%.4f px/min)\n", engine.Width(), engine.Mapper().MinutesToPixels(1))
	fmt.Fprintf(w, "  Selection limits: %.2f - %.2f px\n", engine.MinWidth(), engine.MaxWidth())
	fmt.Fprintf(w, "  Ticks: %v\n", engine.TickLabels())

	fmt.Fprintln(w, "\nAllowed ranges:")
	spans := engine.AllowedSpans()
	if len(spans) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, s := range spans {
		fmt.Fprintf(w, "  %s  left=%.2f width=%.2f\n", s.Range, s.Left, s.Width)
	}

	fmt.Fprintln(w, "\nInitial selection:")
	state, ok := engine.Selection()
	if !ok {
		fmt.Fprintln(w, "  (none)")
		return
	}
	fmt.Fprintf(w, "  left=%.2f width=%.2f valid=%t\n", state.Left, state.Width, state.Valid)
	fmt.Fprintf(w, "  %s, %d min\n", engine.RangeLabel(), engine.DurationMinutes())
}
