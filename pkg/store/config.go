package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where the schedule database lives on disk.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .bakeplan config file and environment
// overrides (BAKEPLAN_PATH) to locate the database directory.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.bakeplan.db")
	viper.SetConfigName(".bakeplan") // .yaml is implicit
	viper.SetEnvPrefix("BAKEPLAN")
	viper.AutomaticEnv()

	if override := os.Getenv("BAKEPLAN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
