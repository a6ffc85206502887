package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"earnings/model"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
)

const (
	DefaultPort               = "8080"
	DefaultRequestTimeoutSec  = 15
	DefaultSummaryTimeoutSec  = 20
	DefaultCacheTTLMinutes    = 15
	DefaultCacheMaxItems      = 5000
	DefaultNullResultTTLSec   = 60
	DefaultBatchConcurrency   = 10
	DefaultMaxBatchSymbols    = 100
	DefaultAlphaVantageMaxRPM = 0
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

func defaults() model.EnvConfig {
	return model.EnvConfig{
		Port:               DefaultPort,
		Environment:        "development",
		LogLevel:           "info",
		RequestTimeoutSec:  DefaultRequestTimeoutSec,
		SummaryTimeoutSec:  DefaultSummaryTimeoutSec,
		CacheTTLMinutes:    DefaultCacheTTLMinutes,
		CacheMaxItems:      DefaultCacheMaxItems,
		NullResultTTLSec:   DefaultNullResultTTLSec,
		BatchConcurrency:   DefaultBatchConcurrency,
		MaxBatchSymbols:    DefaultMaxBatchSymbols,
		AlphaVantageMaxRPM: DefaultAlphaVantageMaxRPM,
	}
}

// LoadConfigs reads .env (if present), then the optional JSON blob in the
// "config" variable, then individual variables. Later sources win.
func LoadConfigs() (*SystemConfigs, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}
	return loadFrom(os.Getenv)
}

func loadFrom(getenv func(string) string) (*SystemConfigs, error) {
	envCfg := defaults()

	if rawJson := getenv("config"); rawJson != "" {
		var blob map[string]any
		if err := json.Unmarshal([]byte(rawJson), &blob); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
		if err := mapstructure.WeakDecode(blob, &envCfg); err != nil {
			return nil, fmt.Errorf("failed to decode config JSON: %w", err)
		}
	}

	strs := map[string]*string{
		"PORT":              &envCfg.Port,
		"ENVIRONMENT":       &envCfg.Environment,
		"LOG_LEVEL":         &envCfg.LogLevel,
		"FINNHUB_KEY":       &envCfg.FinnhubApiKey,
		"ALPHA_VANTAGE_KEY": &envCfg.AlphaVantageApiKey,
		"OPENAI_KEY":        &envCfg.OpenAiApiKey,
		"OPENAI_MODEL":      &envCfg.OpenAiModel,
		"GEMINI_API_KEY":    &envCfg.GeminiApiKey,
		"GEMINI_MODEL":      &envCfg.GeminiModel,
	}
	for name, dst := range strs {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"REQUEST_TIMEOUT_SEC":   &envCfg.RequestTimeoutSec,
		"SUMMARY_TIMEOUT_SEC":   &envCfg.SummaryTimeoutSec,
		"CACHE_TTL_MIN":         &envCfg.CacheTTLMinutes,
		"CACHE_MAX_ITEMS":       &envCfg.CacheMaxItems,
		"NULL_RESULT_TTL_SEC":   &envCfg.NullResultTTLSec,
		"BATCH_CONCURRENCY":     &envCfg.BatchConcurrency,
		"MAX_BATCH_SYMBOLS":     &envCfg.MaxBatchSymbols,
		"ALPHA_VANTAGE_MAX_RPM": &envCfg.AlphaVantageMaxRPM,
	}
	for name, dst := range ints {
		v := strings.TrimSpace(getenv(name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid value %q for %s: must be a non-negative integer", v, name)
		}
		*dst = n
	}

	if v := getenv("FRONTEND_URLS"); v != "" {
		envCfg.FrontendUrls = splitList(v)
	}

	applyFloors(&envCfg)

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

// applyFloors replaces zero values that would disable the service outright.
func applyFloors(c *model.EnvConfig) {
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.RequestTimeoutSec == 0 {
		c.RequestTimeoutSec = DefaultRequestTimeoutSec
	}
	if c.SummaryTimeoutSec == 0 {
		c.SummaryTimeoutSec = DefaultSummaryTimeoutSec
	}
	if c.CacheTTLMinutes == 0 {
		c.CacheTTLMinutes = DefaultCacheTTLMinutes
	}
	if c.BatchConcurrency == 0 {
		c.BatchConcurrency = DefaultBatchConcurrency
	}
	if c.MaxBatchSymbols == 0 {
		c.MaxBatchSymbols = DefaultMaxBatchSymbols
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
