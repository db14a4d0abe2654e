// Package config builds runtime configuration from the environment so main
// stays lean.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	AdminToken    string
	JWTSigningKey string

	// AdminAddress is the wallet that passes the administrator check and
	// receives treasury withdrawals.
	AdminAddress string
}

// Collection captures the issuance parameters the controller starts with.
// Price and flags remain mutable at runtime through the admin surface.
type Collection struct {
	MaxSupply            uint64
	MintPrice            uint64
	MaxMintPerAddress    uint64
	PublicMintEnabled    bool
	WhitelistMintEnabled bool
	BaseURI              string
}

// Redis captures the connection settings for the per-address count store.
// An empty URL selects the in-memory store.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Config is everything the server needs to start.
type Config struct {
	Server     Server
	Collection Collection
	Redis      Redis

	// PostgresURL selects the persistent allowlist store; empty means
	// in-memory.
	PostgresURL string

	// KafkaBrokers selects the Kafka event sink; empty means the in-memory
	// event store.
	KafkaBrokers []string
	KafkaTopic   string

	// EventBuffer > 0 switches the event publisher to bounded-async mode.
	EventBuffer int
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		Server: Server{
			Addr:          envOr("MINTGATE_ADDR", ":8080"),
			AdminToken:    os.Getenv("MINTGATE_ADMIN_TOKEN"),
			JWTSigningKey: envOr("MINTGATE_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
			AdminAddress:  os.Getenv("MINTGATE_ADMIN_ADDRESS"),
		},
		Redis: Redis{
			URL:          os.Getenv("MINTGATE_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		PostgresURL: os.Getenv("MINTGATE_POSTGRES_URL"),
		KafkaTopic:  envOr("MINTGATE_KAFKA_TOPIC", "mintgate.events"),
	}

	if brokers := os.Getenv("MINTGATE_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	var err error
	if cfg.EventBuffer, err = envInt("MINTGATE_EVENT_BUFFER", 0); err != nil {
		return Config{}, err
	}
	if cfg.Collection, err = collectionFromEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func collectionFromEnv() (Collection, error) {
	maxSupply, err := envUint64("MINTGATE_MAX_SUPPLY", 10000)
	if err != nil {
		return Collection{}, err
	}
	price, err := envUint64("MINTGATE_MINT_PRICE", 0)
	if err != nil {
		return Collection{}, err
	}
	perAddress, err := envUint64("MINTGATE_MAX_MINT_PER_ADDRESS", 5)
	if err != nil {
		return Collection{}, err
	}

	return Collection{
		MaxSupply:            maxSupply,
		MintPrice:            price,
		MaxMintPerAddress:    perAddress,
		PublicMintEnabled:    os.Getenv("MINTGATE_PUBLIC_MINT_ENABLED") == "true",
		WhitelistMintEnabled: os.Getenv("MINTGATE_WHITELIST_MINT_ENABLED") == "true",
		BaseURI:              envOr("MINTGATE_BASE_URI", "ipfs://mintgate/"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUint64(key string, fallback uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an unsigned integer: %w", key, err)
	}
	return v, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}
