package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pacemeta",
	Short: "pacemeta cli",
	Long:  `Apply curated One Pace metadata to a Plex or Jellyfin library`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("PACEMETA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("server.kind", "plex")
	viper.SetDefault("server.url", "")
	viper.SetDefault("server.token", "")
	viper.SetDefault("server.backoff", time.Second)
	viper.SetDefault("server.maxRetries", 5)

	viper.SetDefault("datasets.seasons", "")
	viper.SetDefault("datasets.episodes", "")
	viper.SetDefault("datasets.releases", "")

	viper.SetDefault("reconcile.updateDelay", 500*time.Millisecond)
	viper.SetDefault("reconcile.seasonDelay", 2*time.Second)
	viper.SetDefault("reconcile.posterURLTemplate", "")
}
