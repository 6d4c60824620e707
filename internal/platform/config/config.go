// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/heliowash/backoffice/internal/core/domain"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret        string
	JWTExpiryMinutes int
	JWTIssuer        string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// DunningRunHour is the local hour (0-23) at which the daily relance
	// batch fires.
	DunningRunHour int
	Dunning        domain.DunningConfig
}

// LoadConfig reads configuration from environment variables, falling back to
// a .env file when present. Defaults cover everything except the database
// URL and the JWT secret.
func LoadConfig(logger *slog.Logger) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("JWT_EXPIRY_MINUTES", 60)
	v.SetDefault("JWT_ISSUER", "heliowash-backoffice")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("DUNNING_RUN_HOUR", 6)
	v.SetDefault("DUNNING_TIER1_DAYS", 15)
	v.SetDefault("DUNNING_TIER2_DAYS", 30)
	v.SetDefault("DUNNING_TIER3_DAYS", 45)
	v.SetDefault("DUNNING_TIER4_DAYS", 60)
	v.SetDefault("DUNNING_AUTO_SEND_MAX_TIER", 2)

	cfg := &AppConfig{
		DatabaseURL:  v.GetString("PGSQL_URL"),
		Port:         v.GetString("PORT"),
		IsProduction: v.GetBool("IS_PRODUCTION"),

		JWTSecret:        v.GetString("JWT_SECRET"),
		JWTExpiryMinutes: v.GetInt("JWT_EXPIRY_MINUTES"),
		JWTIssuer:        v.GetString("JWT_ISSUER"),

		SMTPHost:     v.GetString("SMTP_HOST"),
		SMTPPort:     v.GetInt("SMTP_PORT"),
		SMTPUsername: v.GetString("SMTP_USERNAME"),
		SMTPPassword: v.GetString("SMTP_PASSWORD"),
		SMTPFrom:     v.GetString("SMTP_FROM"),

		GoogleClientID:     v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  v.GetString("GOOGLE_REDIRECT_URL"),

		DunningRunHour: v.GetInt("DUNNING_RUN_HOUR"),
		Dunning:        loadDunningConfig(v),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DunningRunHour < 0 || cfg.DunningRunHour > 23 {
		return nil, fmt.Errorf("DUNNING_RUN_HOUR must be between 0 and 23, got %d", cfg.DunningRunHour)
	}

	return cfg, nil
}

// loadDunningConfig builds the escalation cadence from the environment,
// enforcing strictly increasing thresholds across tiers.
func loadDunningConfig(v *viper.Viper) domain.DunningConfig {
	cfg := domain.DunningConfig{
		MinDaysOverdue: map[domain.DunningTier]int{
			domain.TierAmicalReminder: v.GetInt("DUNNING_TIER1_DAYS"),
			domain.TierFirmReminder:   v.GetInt("DUNNING_TIER2_DAYS"),
			domain.TierFormalNotice:   v.GetInt("DUNNING_TIER3_DAYS"),
			domain.TierLitigation:     v.GetInt("DUNNING_TIER4_DAYS"),
		},
		AutoSend: make(map[domain.DunningTier]bool, len(domain.AllTiers)),
	}

	maxAuto := v.GetInt("DUNNING_AUTO_SEND_MAX_TIER")
	for _, tier := range domain.AllTiers {
		cfg.AutoSend[tier] = int(tier) <= maxAuto
	}

	previous := 0
	for _, tier := range domain.AllTiers {
		if cfg.MinDaysOverdue[tier] <= previous {
			// A broken cadence would misclassify every invoice; fall back whole.
			return domain.DefaultDunningConfig()
		}
		previous = cfg.MinDaysOverdue[tier]
	}
	return cfg
}
