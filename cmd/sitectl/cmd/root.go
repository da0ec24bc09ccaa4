package cmd

import (
	"fmt"
	"os"

	"mosaic-media/internal/config"

	"github.com/spf13/cobra"
)

var cfgFile string
var appConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "sitectl",
	Short: "Admin tooling for the Mosaic Media site",
	Long: `sitectl manages the Mosaic Media content platform from the command
line: creating admin accounts and seeding initial categories and
home-page sections.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}
