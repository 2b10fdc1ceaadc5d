package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	"github.com/msto63/mdwtime/foundation/utils/timex"
	"github.com/msto63/mdwtime/pkg/core/health"
	"github.com/msto63/mdwtime/pkg/core/version"
)

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Prüft Config, Datenbank und Zeit-Kodierung",
	Long: `Führt alle Health-Checks aus: Gültigkeit der Config, Erreichbarkeit
der Zeitfenster-Datenbank und die Rundreise der aktuellen Zeit durch Text-
und CBOR-Kodierung. Bei einem fehlgeschlagenen Check endet der Befehl mit
einem Fehler.`,
	Args: cobra.NoArgs,
	RunE: runHealth,
}

func init() {
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Bericht als JSON ausgeben")
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, logger, _, err := setup()
	if err != nil {
		return err
	}

	registry := health.NewRegistry(cfg.General.Name, version.Todctl)
	registry.Register(health.ErrorCheck("config", func(ctx context.Context) error {
		return cfg.Validate()
	}))
	registry.Register(health.ErrorCheck("codec", func(ctx context.Context) error {
		return checkCodec(timex.Now())
	}))

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		registry.RegisterFunc("store", func(ctx context.Context) health.CheckResult {
			return health.CheckResult{
				Status:  health.StatusUnhealthy,
				Message: err.Error(),
				Details: map[string]interface{}{"path": cfg.Store.Path},
			}
		})
	} else {
		defer store.Close()
		registry.Register(health.StoreCheck("store", store))
	}

	report := registry.CheckWithTimeout(5 * time.Second)
	if err := printHealth(cmd, report); err != nil {
		return err
	}

	if !report.Healthy() {
		err := mdwerror.New(fmt.Sprintf("health check failed: %s", report.Status)).
			WithCode(mdwerror.CodeInternal).
			WithOperation("todctl.health")
		logger.LogError(err)
		return err
	}
	return nil
}

// checkCodec round-trips t through its text and CBOR encodings
func checkCodec(t timex.TimeOfDay) error {
	text, err := t.MarshalText()
	if err != nil {
		return err
	}
	var fromText timex.TimeOfDay
	if err := fromText.UnmarshalText(text); err != nil {
		return err
	}

	data, err := t.MarshalCBOR()
	if err != nil {
		return err
	}
	var fromCBOR timex.TimeOfDay
	if err := fromCBOR.UnmarshalCBOR(data); err != nil {
		return err
	}

	if !fromText.Equal(t) || !fromCBOR.Equal(t) {
		return fmt.Errorf("round trip of %s gave %s (text) and %s (cbor)", t, fromText, fromCBOR)
	}
	return nil
}

func printHealth(cmd *cobra.Command, report *health.Report) error {
	out := cmd.OutOrStdout()

	if healthJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, headerStyle.Render(fmt.Sprintf("%s v%s: %s", report.Service, report.Version, report.Status)), "\n")
	for _, c := range report.Checks {
		fmt.Fprint(out, field(c.Name, fmt.Sprintf("%s (%s)", c.Status, c.Message)))
	}
	return nil
}
