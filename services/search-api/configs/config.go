package configs

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/errata-labs/errata-go/pkg/utils"
)

type Config struct {
	Port          string `mapstructure:"PORT" validate:"required"`
	SnapshotPath  string `mapstructure:"SNAPSHOT_PATH" validate:"required"`
	HelixAddr     string `mapstructure:"HELIX_ADDR"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
	SearchRate    int    `mapstructure:"SEARCH_RATE" validate:"min=0"`
	SearchBurst   int    `mapstructure:"SEARCH_BURST" validate:"min=1"`
	CacheTTLSec   int    `mapstructure:"CACHE_TTL_SEC" validate:"min=1"`
}

func Load(logger *zap.Logger) (*Config, error) {
	viper.SetEnvPrefix("app") // Prefix for env vars
	viper.AutomaticEnv()

	// Default values
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("SNAPSHOT_PATH", "./data/stripe-errors-snapshot.json")
	viper.SetDefault("SEARCH_RATE", "50")
	viper.SetDefault("SEARCH_BURST", "100")
	viper.SetDefault("CACHE_TTL_SEC", "30")

	// Optional: Read from config.yaml if exists
	if gin.ReleaseMode == gin.Mode() {
		viper.SetConfigName("config.prod")
	} else if gin.TestMode == gin.Mode() {
		logger.Warn("running in test mode")
		viper.SetConfigName("config.test")
	} else {
		logger.Warn("running in development mode")
		viper.SetConfigName("config.dev")
	}
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./services/search-api/configs")
	_ = viper.ReadInConfig() // Ignore if no file

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
