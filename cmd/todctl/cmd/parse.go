package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <zeit>",
	Short: "Prüft und zerlegt eine Tageszeit",
	Long: `Parst eine Tageszeit im Format HH[:MM[:SS[.fff]]] und zeigt
Formatierung, Komponenten, Sekunden seit Epoche und die native Struktur.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	_, _, v, err := setup()
	if err != nil {
		return err
	}

	t, err := parseTime(v, args[0])
	if err != nil {
		return err
	}

	c := t.Components()
	n := t.Native()
	out := cmd.OutOrStdout()
	fmt.Fprint(out, headerStyle.Render("Tageszeit"), "\n")
	fmt.Fprint(out, field("Zeit", t.Format(true)))
	fmt.Fprint(out, field("Komponenten", fmt.Sprintf("h=%d m=%d s=%d ms=%d", c.Hour, c.Minute, c.Second, c.Millisecond)))
	fmt.Fprint(out, field("ms seit 0 Uhr", t.MillisOfDay()))
	fmt.Fprint(out, field("Epoche", t.Unix()))
	fmt.Fprint(out, field("Nativ", fmt.Sprintf("%02d:%02d:%02d (%s)", n.Hour, n.Minute, n.Second, n.Type)))
	return nil
}
