package main

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	buildVersion       = "unknown"
	cfgFile            string
	logLevel           string
	envPrefix          = "LVSTEINER"
	defaultCfgFileName = ".lvsteiner"
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:           "lvsteiner",
	Short:         "Approximate minimum Steiner trees on weighted graphs",
	Version:       buildVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// initConfig use config file and ENV variables if set.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home directory with name ".lvsteiner" (without extension).
			v.AddConfigPath(home)
			v.SetConfigName(defaultCfgFileName)
		}
	}

	// Read environment variables that match prefix
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfgErr := v.ReadInConfig()

	for _, cmd := range []*cobra.Command{rootCmd, solveCmd, generateCmd} {
		bindFlags(cmd, v)
	}

	initLogger()

	var notFound viper.ConfigFileNotFoundError
	if cfgErr != nil && (cfgFile != "" || !errors.As(cfgErr, &notFound)) {
		log.Errorf("Read config error: %v", cfgErr)
	}
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true, DisableQuote: true})
}

func dumpConfig(v interface{}) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	configAsJSON, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		log.Warnf("error dumping config: %v", err)
		return
	}
	log.Debugf("Using configuration:\n%s", configAsJSON)
}

// bindFlags binds every flag to LVSTEINER_<NAME> and applies config file or
// environment values to flags the user did not set.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		envVarSuffix := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(f.Name))
		_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			switch val := val.(type) {
			case bool, uint, string, int32, int16, int8, int, uint32, uint64, int64, float64, float32:
				_ = cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
			case []string:
				_ = cmd.Flags().Set(f.Name, strings.Join(val, ","))
			case []interface{}:
				parts := make([]string, len(val))
				for i, p := range val {
					parts[i] = fmt.Sprintf("%v", p)
				}
				_ = cmd.Flags().Set(f.Name, strings.Join(parts, ","))
			default:
				var jsonNew = jsoniter.ConfigCompatibleWithStandardLibrary
				b, err := jsonNew.Marshal(&val)
				if err != nil {
					log.Fatalf("can't parse flag %s into json with value %v got error %s", f.Name, val, err)
					return
				}
				_ = cmd.Flags().Set(f.Name, string(b))
			}
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", defaultCfgFileName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	initSolveFlags()
	initGenerateFlags()
	rootCmd.AddCommand(solveCmd, generateCmd)
}

func main() {
	// Initialize flags (command line parameters)
	initFlags()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
