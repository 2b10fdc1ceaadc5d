package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mdwtime/internal/slots"
	"github.com/msto63/mdwtime/internal/tui/clock"
)

var (
	watchUntil string
	watchUTC   bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Startet die Live-Uhr (TUI)",
	Long: `Startet eine Live-Uhr mit Countdown zur Zielzeit, Tagesfortschritt und
den gerade aktiven Zeitfenstern. Die Zielzeit kommt aus --until oder
watch.target in der Config.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchUntil, "until", "", "Zielzeit HH:MM[:SS]")
	watchCmd.Flags().BoolVar(&watchUTC, "utc", false, "UTC statt lokaler Zeit")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, v, err := setup()
	if err != nil {
		return err
	}

	target := cfg.Watch.Target
	if watchUntil != "" {
		if target, err = parseTime(v, watchUntil); err != nil {
			return err
		}
	}

	clockCfg := clock.DefaultConfig()
	clockCfg.Target = target
	clockCfg.Refresh = cfg.Watch.Refresh.Duration
	clockCfg.UTC = watchUTC

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		// The clock still works without slots
		logger.WarnWithErr("slot store unavailable", err)
	} else {
		cached := slots.NewCachedStore(store, cfg.Store.CacheTTL.Duration)
		defer cached.Close()
		clockCfg.Store = cached
	}

	return clock.Run(clockCfg)
}
