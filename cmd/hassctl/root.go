package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hausnet/hass-go/client"
	"github.com/hausnet/hass-go/config"
)

var (
	cfgFile   string
	flagURL   string
	flagToken string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hassctl",
	Short: "Query a Home Assistant server over its REST API",
	Long: `hassctl talks to a Home Assistant instance over its REST API and
prints the responses as JSON.

The server URL and API token come from --url/--token, the config file
($HOME/.hassctl.yaml), or the HA_URL and HA_TOKEN environment variables,
in that order of precedence. A .env file in the working directory is
loaded first.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hassctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Home Assistant base URL")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "Home Assistant API token")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".hassctl")
		}
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

// newClient resolves connection settings and builds a client. Flags beat
// the config file; the environment is the final fallback.
func newClient() (*client.Client, error) {
	url := flagURL
	if url == "" {
		url = viper.GetString("url")
	}
	token := flagToken
	if token == "" {
		token = viper.GetString("token")
	}

	settings, err := config.Resolve(url, token)
	if err != nil {
		return nil, err
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}

	return client.New(settings, logger), nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseJSONFlag decodes a --data style flag value. An empty value is an
// empty object.
func parseJSONFlag(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return map[string]interface{}{}, nil
	}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON in --data: %w", err)
	}
	return data, nil
}
