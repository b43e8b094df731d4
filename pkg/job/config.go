package job

import (
	"flag"

	"github.com/spf13/viper"
)

type Config struct {
	Name       string `mapstructure:"name"`
	Threshold  int    `mapstructure:"threshold"`
	Factor     int64  `mapstructure:"factor"`
	Delta      int64  `mapstructure:"delta"`
	Retries    int    `mapstructure:"retries"`
	ChunkSize  int    `mapstructure:"chunk_size"`
	Mask       uint8  `mapstructure:"mask"`
	Compress   bool   `mapstructure:"compress"`
	ConfigFile string `mapstructure:"config_file"`
}

// DefaultRetries is the number of diagnostic attempt iterations a run
// performs.
const DefaultRetries = 3

func DefaultConfig() *Config {
	return &Config{
		Name:       "sample",
		Threshold:  4,
		Factor:     2,
		Delta:      0,
		Retries:    DefaultRetries,
		ChunkSize:  4,
		Mask:       0xAA,
		ConfigFile: "bytesieve", // config file name, without extension
	}
}

// LoadConfig loads configuration from file, environment, and flags, in
// that order of precedence.
func LoadConfig(parseFlags bool) (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName(cfg.ConfigFile)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/bytesieve/")
	viper.AddConfigPath("$HOME/.bytesieve")
	viper.SetEnvPrefix("BYTESIEVE") // BYTESIEVE_... env vars
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; defaults and env still apply.
	}

	if parseFlags {
		flag.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Name of the configuration file (without extension)")
		flag.StringVar(&cfg.Name, "name", cfg.Name, "Run name used in the summary line")
		flag.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "Upper bound of the collected sequence")
		flag.Int64Var(&cfg.Factor, "factor", cfg.Factor, "Multiplier factor")
		flag.Int64Var(&cfg.Delta, "delta", cfg.Delta, "Offset added after multiplication (0 disables the stage)")
		flag.IntVar(&cfg.Retries, "retries", cfg.Retries, "Number of diagnostic attempt iterations")
		flag.Parse()
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
