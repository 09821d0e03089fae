package configs

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/utils"
)

type Config struct {
	SnapshotPath string `mapstructure:"SNAPSHOT_PATH" validate:"required"`
	HelixAddr    string `mapstructure:"HELIX_ADDR"`
}

func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app") // Prefix for env vars
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("SNAPSHOT_PATH", "./data/stripe-errors-snapshot.json")

	var cfg Config
	if err := utils.ParseStructEnv(&cfg); err != nil {
		return nil, err
	}
	// Validate after unmarshal
	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, utils.FormatConfigErrors(logger, err, cfg)
	}
	return &cfg, nil
}
