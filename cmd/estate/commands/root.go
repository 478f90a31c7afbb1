package commands

import (
	"os"

	"github.com/spf13/cobra"

	"estate/internal/agency"
	"estate/internal/logging"
)

var (
	dataDir string
	envFile string

	ag *agency.Agency
)

func Execute() error {
	root := &cobra.Command{
		Use:          "estate",
		Short:        "Real-estate agency management CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := agency.LoadConfig(envFile)
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			log := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel), cfg.NoColor)

			a, err := agency.New(cfg, log)
			if err != nil {
				return err
			}
			if err := a.LoadAll(); err != nil {
				return err
			}
			ag = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if ag == nil {
				return nil
			}
			return ag.Close()
		},
	}

	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", `data directory (default "data", or ESTATE_DATA_DIR)`)
	root.PersistentFlags().StringVar(&envFile, "env-file", "", ".env file to preload")

	root.AddCommand(propertyCmd(), clientCmd(), transactionCmd(), auctionCmd())
	return root.Execute()
}
