package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "verifica",
	Short: "Scheduled health checks and homepage archiving for a list of websites",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".verifica-sites")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		applyConfigOverrides(cmd.Root(), cliConfig)

		// create the archive root if not exists
		if err := os.MkdirAll(cliConfig.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %s", err.Error())
		}

		// init logger
		l, _ := zap.NewProduction()
		logger = l.Sugar()

		// Make the output dir absolute (for clarity in logs)
		if abs, err := filepath.Abs(cliConfig.OutputDir); err == nil {
			cliConfig.OutputDir = abs
		}

		logger.Infof("links_file=%s output_dir=%s", cliConfig.LinksFile, cliConfig.OutputDir)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", colorError("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.verifica-sites.yaml)")
	rootCmd.PersistentFlags().StringVarP(&cliConfig.LinksFile, "links", "l", cliConfig.LinksFile, "newline-delimited file of site URLs")
	rootCmd.PersistentFlags().StringVarP(&cliConfig.OutputDir, "output", "d", cliConfig.OutputDir, "archive root for snapshots and screenshots")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
