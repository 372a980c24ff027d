package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type gateway struct {
	QueryDelay    time.Duration `mapstructure:"query_delay"`
	MutationDelay time.Duration `mapstructure:"mutation_delay"`
}

type Config struct {
	LogLevel        slog.Level `mapstructure:"log_level"`
	DataDir         string     `mapstructure:"data_dir"`
	CatalogSnapshot string     `mapstructure:"catalog_snapshot"`
	Gateway         gateway    `mapstructure:"gateway"`
}

// Load reads the YAML config selected by the --config flag or the
// STOREFRONT_CONFIG_FILE env var. Without a config file the
// defaults apply, the storefront is a local app and must boot bare.
func Load() Config {
	setDefaults()

	if path := getConfigFilepath(); path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			die(err)
		}
	}

	var cfg Config
	if err := viper.UnmarshalExact(&cfg); err != nil {
		die(err)
	}
	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("catalog_snapshot", "")
	viper.SetDefault("gateway.query_delay", "200ms")
	viper.SetDefault("gateway.mutation_delay", "300ms")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hovixy"
	}
	return home + "/.hovixy"
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	fmt.Println("Loaded config:")
	fmt.Printf(
		"\tLogLevel=%v\n\tDataDir=%q\n\tCatalogSnapshot=%q\n"+
			"\tGateway.QueryDelay=%v\n\tGateway.MutationDelay=%v\n",
		c.LogLevel, c.DataDir, c.CatalogSnapshot,
		c.Gateway.QueryDelay, c.Gateway.MutationDelay,
	)
}
