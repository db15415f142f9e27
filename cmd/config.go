package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	digest "github.com/Giulio2002/faster_digest"
)

type Config struct {
	// Algorithms run against every line, in output order.
	Algorithms []digest.Algorithm

	// Input is a file of newline-separated lines. Empty means standard input.
	Input string

	// Workers bounds how many lines are hashed at once.
	Workers int
}

// LoadConfig resolves flags, environment variables and the config file.
func LoadConfig(v *viper.Viper) (*Config, error) {
	config := &Config{
		Input:   v.GetString("input"),
		Workers: v.GetInt("workers"),
	}
	if config.Workers < 1 {
		config.Workers = 1
	}

	for _, entry := range v.GetStringSlice("algo") {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			alg, err := digest.ParseAlgorithm(name)
			if err != nil {
				return nil, errors.Wrap(err, "LoadConfig")
			}
			config.Algorithms = append(config.Algorithms, alg)
		}
	}
	if len(config.Algorithms) == 0 {
		config.Algorithms = digest.Algorithms
	}
	return config, nil
}
