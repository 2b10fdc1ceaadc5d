package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/msto63/mdwtime/foundation/utils/timex"
)

var betweenProto bool

var addCmd = &cobra.Command{
	Use:   "add <zeit> <dauer>",
	Short: "Addiert eine Dauer zu einer Tageszeit",
	Long: `Addiert eine Dauer (Go-Format, z.B. 90m, 1h30m, -45s, 1500ms) zu einer
Tageszeit. Das Ergebnis läuft im 24-Stunden-Zyklus um.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShift(cmd, args, false)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <zeit> <dauer>",
	Short: "Subtrahiert eine Dauer von einer Tageszeit",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShift(cmd, args, true)
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <a> <b>",
	Short: "Zeigt den Abstand zwischen zwei Tageszeiten",
	Long: `Zeigt den Abstand von b nach a auf dem kürzeren Weg über die Uhr.
Der Betrag ist höchstens 12 Stunden: 20:00 und 01:00 liegen 5 Stunden
auseinander, nicht 19. Liegt a vor b, ist das Ergebnis negativ.`,
	Args: cobra.ExactArgs(2),
	RunE: runBetween,
}

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Zeigt die Differenz a - b in Sekunden",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	// Negative durations must not be read as flags
	addCmd.Flags().SetInterspersed(false)
	subCmd.Flags().SetInterspersed(false)

	betweenCmd.Flags().BoolVar(&betweenProto, "proto", false, "Ausgabe als protobuf Duration (JSON)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(betweenCmd)
	rootCmd.AddCommand(diffCmd)
}

func runShift(cmd *cobra.Command, args []string, subtract bool) error {
	_, _, v, err := setup()
	if err != nil {
		return err
	}

	t, err := parseTime(v, args[0])
	if err != nil {
		return err
	}

	d, err := time.ParseDuration(args[1])
	if err != nil {
		return fmt.Errorf("ungültige Dauer %q: %w", args[1], err)
	}

	span := timex.SpanOf(d)
	result := t.Add(span)
	if subtract {
		result = t.Sub(span)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Format(true))
	return nil
}

func runBetween(cmd *cobra.Command, args []string) error {
	_, _, v, err := setup()
	if err != nil {
		return err
	}

	a, err := parseTime(v, args[0])
	if err != nil {
		return err
	}
	b, err := parseTime(v, args[1])
	if err != nil {
		return err
	}

	span := a.Between(b)
	if betweenProto {
		data, err := protojson.Marshal(span.ToProto())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), span.String())
	return nil
}

func runDiff(cmd *cobra.Command, args []string) error {
	_, _, v, err := setup()
	if err != nil {
		return err
	}

	a, err := parseTime(v, args[0])
	if err != nil {
		return err
	}
	b, err := parseTime(v, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.DiffSeconds(b))
	return nil
}
