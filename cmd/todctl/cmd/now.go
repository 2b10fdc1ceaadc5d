package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdwtime/foundation/utils/timex"
)

var nowUTC bool

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Zeigt die aktuelle Tageszeit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := timex.Now()
		if nowUTC {
			t = timex.NowUTC()
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Format(false))
	},
}

func init() {
	nowCmd.Flags().BoolVar(&nowUTC, "utc", false, "UTC statt lokaler Zeit")
	rootCmd.AddCommand(nowCmd)
}
