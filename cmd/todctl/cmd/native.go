package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwtime/foundation/utils/timex"
)

var (
	nativeCBOR   bool
	nativeDecode bool
)

var nativeCmd = &cobra.Command{
	Use:   "native <zeit|cbor-hex>",
	Short: "Zeigt die native Datenbankstruktur einer Tageszeit",
	Long: `Wandelt eine Tageszeit in die native Zeitstruktur des Datenbank-Clients
(Typ TIME) und gibt sie als JSON aus. Mit --cbor zusätzlich als CBOR (hex).
Mit --decode wird ein CBOR-kodierter Wert (hex) zurück in eine Tageszeit
gewandelt; der Sekundenbruchteil wird dabei ignoriert.`,
	Args: cobra.ExactArgs(1),
	RunE: runNative,
}

func init() {
	nativeCmd.Flags().BoolVar(&nativeCBOR, "cbor", false, "Zusätzlich CBOR-Kodierung (hex) ausgeben")
	nativeCmd.Flags().BoolVar(&nativeDecode, "decode", false, "Argument als CBOR (hex) dekodieren")
	rootCmd.AddCommand(nativeCmd)
}

func runNative(cmd *cobra.Command, args []string) error {
	_, _, v, err := setup()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if nativeDecode {
		raw, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("ungültiges hex: %w", err)
		}
		n, err := timex.DecodeNative(raw)
		if err != nil {
			return err
		}
		t, err := v.FromNative(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, t.Format(true))
		return nil
	}

	t, err := parseTime(v, args[0])
	if err != nil {
		return err
	}

	n := t.Native()
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))

	if nativeCBOR {
		encoded, err := timex.EncodeNative(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hex.EncodeToString(encoded))
	}
	return nil
}
