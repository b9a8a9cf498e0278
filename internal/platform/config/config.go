package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds application configuration.
type Config struct {
	DBDriver           string
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	RunMigrations      bool
	MigrationsPath     string
	CORSAllowedOrigins []string
	RateLimit          string // limiter formatted rate, e.g. "300-M"
	PosthogAPIKey      string
	PosthogEndpoint    string
	Timezone           *time.Location
	ShutdownTimeout    time.Duration
	PDFFontPath        string // Optional UTF-8 TTF for PDF statements

	// Classification of line items
	WageRate         decimal.Decimal
	FlatWageTruckIDs []int64
	FlatWageKeywords []string
	RepairKeywords   []string
	ParkingKeywords  []string
}

// LoadConfig loads configuration from environment variables, a .env file and
// an optional config.yaml (keyword lists) if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", false)
	v.SetDefault("MIGRATIONS_PATH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://app.posthog.com")
	v.SetDefault("TIMEZONE", "Asia/Bangkok")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("PDF_FONT_PATH", "")
	v.SetDefault("WAGE_RATE", "0.16")
	v.SetDefault("FLAT_WAGE_TRUCK_IDS", "")
	v.SetDefault("FLAT_WAGE_KEYWORDS", "10ล้อ,เหมา")
	v.SetDefault("REPAIR_KEYWORDS", "ซ่อม,ยาง,น้ำมันเครื่อง,อะไหล่,repair,tire,tyre,engine oil,parts")
	v.SetDefault("PARKING_KEYWORDS", "จอด,พัก,ค้างคืน,ด่าน,park,rest,overnight,checkpoint")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:   v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		PosthogAPIKey:   v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint: v.GetString("POSTHOG_ENDPOINT"),
		PDFFontPath:     v.GetString("PDF_FONT_PATH"),
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverMySQL {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", cfg.DBDriver, DriverPostgres, DriverMySQL)
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = "file://migrations/" + cfg.DBDriver
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	tz := v.GetString("TIMEZONE")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}
	cfg.Timezone = loc

	shutdownStr := v.GetString("SHUTDOWN_TIMEOUT")
	cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr)
	if err != nil {
		cfg.ShutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, cfg.ShutdownTimeout)
	}

	rateStr := v.GetString("WAGE_RATE")
	cfg.WageRate, err = decimal.NewFromString(rateStr)
	if err != nil || cfg.WageRate.IsNegative() {
		return nil, fmt.Errorf("invalid WAGE_RATE %q", rateStr)
	}

	for _, raw := range splitList(v.GetString("FLAT_WAGE_TRUCK_IDS")) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid truck id %q in FLAT_WAGE_TRUCK_IDS: %w", raw, err)
		}
		cfg.FlatWageTruckIDs = append(cfg.FlatWageTruckIDs, id)
	}

	cfg.FlatWageKeywords = keywordList(v, "FLAT_WAGE_KEYWORDS")
	cfg.RepairKeywords = keywordList(v, "REPAIR_KEYWORDS")
	cfg.ParkingKeywords = keywordList(v, "PARKING_KEYWORDS")

	return cfg, nil
}

// keywordList accepts either a YAML sequence from config.yaml or a comma
// separated environment value.
func keywordList(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).([]any); ok {
		out := make([]string, 0, len(raw))
		for _, item := range raw {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return splitList(v.GetString(key))
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
