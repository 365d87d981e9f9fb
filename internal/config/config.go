package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/ZilDuck/nft-marketplace/internal/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Env     string
	Network string
	Debug   bool

	LogPath string
	ApiPort string

	MarketplaceAddress string
	DirectoryAddress   string
	TerminalCacheTtl   int

	AmqpUri string

	Chain ChainConfig
}

type ChainConfig struct {
	Url     string
	Timeout int
	Debug   bool
}

func Init(service string) {
	if err := godotenv.Load(".env"); err != nil {
		zap.L().With(zap.Error(err)).Warn("Unable to load .env")
	}

	initLogger(service)
}

func initLogger(service string) {
	log.NewLogger(getString("LOG_PATH", "marketplace.log"), service, Get().Debug)
}

func Get() *Config {
	return &Config{
		Env:                getString("ENV", ""),
		Network:            getString("NETWORK", "mainnet"),
		Debug:              getBool("DEBUG", false),
		LogPath:            getString("LOG_PATH", "marketplace.log"),
		ApiPort:            getString("API_PORT", "8080"),
		MarketplaceAddress: getString("MARKETPLACE_ADDRESS", ""),
		DirectoryAddress:   getString("TREASURY_DIRECTORY_ADDRESS", ""),
		TerminalCacheTtl:   getInt("TERMINAL_CACHE_TTL", 300),
		AmqpUri:            getString("AMQP_URI", ""),
		Chain: ChainConfig{
			Url:     getString("CHAIN_URL", ""),
			Timeout: getInt("CHAIN_TIMEOUT", 30),
			Debug:   getBool("CHAIN_DEBUG", false),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	if val, err := strconv.Atoi(strings.TrimSpace(valStr)); err == nil {
		return val
	}

	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}
