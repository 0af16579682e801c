package helpers

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Settings is the typed view of conf/config.yaml.
type Settings struct {
	Catalog struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"catalog"`
	Generator struct {
		Rows int `mapstructure:"rows"`
	} `mapstructure:"generator"`
	Benchmark struct {
		Multiplier int `mapstructure:"multiplier"`
	} `mapstructure:"benchmark"`
	Display struct {
		TableRows  int `mapstructure:"table_rows"`
		ChartWidth int `mapstructure:"chart_width"`
	} `mapstructure:"display"`
	API struct {
		Address string `mapstructure:"address"`
	} `mapstructure:"api"`
}

func setDefaults() {
	viper.SetDefault("catalog.path", "spare_parts.csv")
	viper.SetDefault("generator.rows", 500)
	viper.SetDefault("benchmark.multiplier", 5)
	viper.SetDefault("display.table_rows", 10)
	viper.SetDefault("display.chart_width", 40)
	viper.SetDefault("api.address", "127.0.0.1:8010")
}

// ReadConfig reads application configuration. A missing config file is not
// an error; the defaults apply.
func ReadConfig() {
	if err := readConfig("./conf"); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
}

func readConfig(paths ...string) error {
	log.Println("Reading configuration.")
	setDefaults()
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Println("No config file found, using defaults.")
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("Using config file %s", viper.ConfigFileUsed())
	return nil
}

// LoadSettings decodes the current configuration.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("cannot decode configuration: %w", err)
	}
	return s, nil
}
