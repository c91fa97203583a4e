package cmd

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cheerioskun/slotpick/internal/broadcast"
	"github.com/cheerioskun/slotpick/internal/models"
	"github.com/cheerioskun/slotpick/internal/timeline"
	"github.com/cheerioskun/slotpick/internal/utils"
	"github.com/cheerioskun/slotpick/ui"
	"github.com/cheerioskun/slotpick/ui/tickslider"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	minMinutes float64
	maxMinutes float64
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Start the interactive time slot picker",
	Long: `Start the interactive Terminal User Interface for picking a time slot.

The TUI provides:
- A timeline of the configured hour window with the allowed ranges shaded
- A selection box you can drag, or resize with its [ ] handles
- Keyboard nudging and resizing
- A duration slider sharing its value with the timeline

On exit the chosen range is printed to stdout.

Examples:
  slotpick pick
  slotpick pick --max-minutes 15`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	// Pick-specific flags
	pickCmd.Flags().Float64Var(&minMinutes, "min-minutes", timeline.DefaultMinMinutes, "shortest selection in minutes")
	pickCmd.Flags().Float64Var(&maxMinutes, "max-minutes", timeline.DefaultMaxMinutes, "longest selection in minutes")

	// Bind flags to viper
	viper.BindPFlag("min_minutes", pickCmd.Flags().Lookup("min-minutes"))
	viper.BindPFlag("max_minutes", pickCmd.Flags().Lookup("max-minutes"))
}

func runPick(cmd *cobra.Command, args []string) error {
	zone.NewGlobal()
	defer zone.Close()

	channel := broadcast.NewChannel()

	// Laid out at the configured width until the first WindowSizeMsg arrives
	engine, err := timeline.NewEngine(settings.Timeline, float64(settings.Width),
		timeline.WithChannel(channel),
		timeline.WithDurationLimits(viper.GetFloat64("min_minutes"), viper.GetFloat64("max_minutes")))
	if err != nil {
		return fmt.Errorf("failed to build timeline: %w", err)
	}
	defer engine.Close()

	slider := tickslider.NewModel(channel)
	defer slider.Close()

	model := ui.NewAppModel(engine, slider)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	utils.Info("starting TUI")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	printResult(cmd.OutOrStdout(), engine, time.Now())
	return nil
}

// printResult prints the picked slot anchored on day and the allowed range holding it
func printResult(w io.Writer, engine *timeline.Engine, day time.Time) {
	state, _ := engine.Selection()
	slot, ok := engine.TimeRange(day)
	if !ok {
		fmt.Fprintln(w, "No selection")
		return
	}

	fmt.Fprintf(w, "%s (%d min)\n", slot.Label(), engine.DurationMinutes())
	fmt.Fprintf(w, "  %s\n", slot)

	if !state.Valid {
		fmt.Fprintln(w, "  not available")
		utils.Info("picked %s outside the allowed ranges", slot)
		return
	}

	for _, r := range engine.Config().AllowedRanges {
		start, end, err := r.Bounds()
		if err != nil {
			continue
		}
		if allowed, err := models.ClockRange(day, start, end); err == nil && allowed.Covers(slot) {
			fmt.Fprintf(w, "  available, inside %s\n", r)
			utils.Info("picked %s inside %s", slot, r)
			return
		}
	}

	fmt.Fprintln(w, "  available")
	utils.Info("picked %s valid=%t", slot, state.Valid)
}
