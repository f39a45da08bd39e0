package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kezhick/Depooper/internal/config"
	"github.com/kezhick/Depooper/internal/ui"
)

const Version = "0.1.0"

var (
	configPath string
	slotFlag   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "dp",
	Short:         "Depooper: teach a night owl to become an early bird",
	Long:          "Depooper is a local-first CLI/TUI life sim: kick coffee, cigarettes and overeating, keep a job, and build a streak of clean days.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Resolve(configPath)
		if err != nil {
			return err
		}
		if slotFlag != "" {
			c.Storage.Slot = slotFlag
		}
		cfg = c
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $DEPOOPER_CONFIG or ./depooper.yaml)")
	rootCmd.PersistentFlags().StringVar(&slotFlag, "slot", "", "save slot")

	rootCmd.AddCommand(
		newNewCmd(),
		newStatusCmd(),
		newDoCmd(),
		newEndDayCmd(),
		newWorkCmd(),
		newPlayCmd(),
		newLogCmd(),
		newQuestsCmd(),
		newJournalCmd(),
		newExportCmd(),
		newSlotsCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
