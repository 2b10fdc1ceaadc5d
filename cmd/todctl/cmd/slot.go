package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	mdwlog "github.com/msto63/mdwtime/foundation/core/log"
	"github.com/msto63/mdwtime/foundation/utils/timex"
	"github.com/msto63/mdwtime/internal/slots"
	"github.com/msto63/mdwtime/pkg/core/config"
)

var slotCmd = &cobra.Command{
	Use:   "slot",
	Short: "Verwaltet benannte Zeitfenster",
	Long: `Verwaltet benannte Zeitfenster des Tages in der SQLite-Datenbank
(store.path in der Config). Fenster, deren Ende vor dem Beginn liegt,
laufen über Mitternacht. In der Config unter [[slots]] definierte
Fenster werden beim Öffnen angelegt, falls sie noch fehlen.`,
}

var slotAddCmd = &cobra.Command{
	Use:   "add <name> <beginn> <ende>",
	Short: "Legt ein Zeitfenster an",
	Args:  cobra.ExactArgs(3),
	RunE:  runSlotAdd,
}

var slotListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet alle Zeitfenster",
	Args:  cobra.NoArgs,
	RunE:  runSlotList,
}

var slotRmCmd = &cobra.Command{
	Use:   "rm <name|id>",
	Short: "Löscht ein Zeitfenster",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlotRm,
}

var slotActiveCmd = &cobra.Command{
	Use:   "active [zeit]",
	Short: "Zeigt die zu einer Zeit aktiven Fenster (default: jetzt)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSlotActive,
}

func init() {
	slotCmd.AddCommand(slotAddCmd)
	slotCmd.AddCommand(slotListCmd)
	slotCmd.AddCommand(slotRmCmd)
	slotCmd.AddCommand(slotActiveCmd)
	rootCmd.AddCommand(slotCmd)
}

// openStore opens the slot database and seeds the slots from the config
func openStore(ctx context.Context, cfg *config.Config) (*slots.SQLiteStore, error) {
	store, err := slots.NewSQLiteStore(slots.SQLiteConfig{Path: cfg.Store.Path})
	if err != nil {
		return nil, err
	}

	defs := make([]slots.Definition, 0, len(cfg.Slots))
	for _, s := range cfg.Slots {
		defs = append(defs, slots.Definition{Name: s.Name, Start: s.Start, End: s.End})
	}
	if _, err := slots.Seed(ctx, store, defs); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func runSlotAdd(cmd *cobra.Command, args []string) error {
	cfg, logger, v, err := setup()
	if err != nil {
		return err
	}

	start, err := parseTime(v, args[1])
	if err != nil {
		return err
	}
	end, err := parseTime(v, args[2])
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	slot, err := store.Create(cmd.Context(), slots.Definition{Name: args[0], Start: start, End: end})
	if err != nil {
		logger.LogError(err)
		return err
	}

	logger.Info("slot created", mdwlog.Fields{"id": slot.ID, "name": slot.Name})
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s-%s (%s)\n",
		slot.Name, slot.Start.Format(true), slot.End.Format(true), slot.Length())
	return nil
}

func runSlotList(cmd *cobra.Command, args []string) error {
	cfg, _, _, err := setup()
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	list, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	printSlots(cmd, list, nil)
	return nil
}

func runSlotRm(cmd *cobra.Command, args []string) error {
	cfg, logger, _, err := setup()
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	id := args[0]
	if slot, err := store.FindByName(cmd.Context(), args[0]); err == nil {
		id = slot.ID
	} else if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return err
	}

	if err := store.Delete(cmd.Context(), id); err != nil {
		return err
	}

	logger.Info("slot deleted", mdwlog.Fields{"id": id})
	fmt.Fprintf(cmd.OutOrStdout(), "gelöscht: %s\n", args[0])
	return nil
}

func runSlotActive(cmd *cobra.Command, args []string) error {
	cfg, _, v, err := setup()
	if err != nil {
		return err
	}

	at := timex.Now()
	if len(args) == 1 {
		if at, err = parseTime(v, args[0]); err != nil {
			return err
		}
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	active, err := store.ActiveAt(cmd.Context(), at)
	if err != nil {
		return err
	}
	printSlots(cmd, active, &at)
	return nil
}

// printSlots writes slots as a table. With at set the remaining time is
// shown instead of the length.
func printSlots(cmd *cobra.Command, list []*slots.Slot, at *timex.TimeOfDay) {
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "Keine Zeitfenster")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if at != nil {
		fmt.Fprintln(w, "NAME\tBEGINN\tENDE\tVERBLEIBEND")
	} else {
		fmt.Fprintln(w, "NAME\tBEGINN\tENDE\tDAUER")
	}
	for _, s := range list {
		span := s.Length()
		if at != nil {
			span = s.Remaining(*at)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Start.Format(true), s.End.Format(true), span)
	}
	w.Flush()
}
