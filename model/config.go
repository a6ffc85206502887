package model

// --- SYSTEM CONFIG ---
// EnvConfig holds process-wide settings, fixed at startup.
type EnvConfig struct {
	Port        string `json:"port" mapstructure:"port"`
	Environment string `json:"environment" mapstructure:"environment"`
	LogLevel    string `json:"logLevel" mapstructure:"logLevel"`

	FinnhubApiKey      string `json:"finnhubApiKey" mapstructure:"finnhubApiKey"`
	AlphaVantageApiKey string `json:"alphaVantageApiKey" mapstructure:"alphaVantageApiKey"`
	OpenAiApiKey       string `json:"openAiApiKey" mapstructure:"openAiApiKey"`
	OpenAiModel        string `json:"openAiModel" mapstructure:"openAiModel"`
	GeminiApiKey       string `json:"geminiApiKey" mapstructure:"geminiApiKey"`
	GeminiModel        string `json:"geminiModel" mapstructure:"geminiModel"`

	FrontendUrls       []string `json:"frontendUrls" mapstructure:"frontendUrls"`
	RequestTimeoutSec  int      `json:"requestTimeoutSec" mapstructure:"requestTimeoutSec"`
	SummaryTimeoutSec  int      `json:"summaryTimeoutSec" mapstructure:"summaryTimeoutSec"`
	CacheTTLMinutes    int      `json:"cacheTtlMinutes" mapstructure:"cacheTtlMinutes"`
	CacheMaxItems      int      `json:"cacheMaxItems" mapstructure:"cacheMaxItems"`
	NullResultTTLSec   int      `json:"nullResultTtlSec" mapstructure:"nullResultTtlSec"`
	BatchConcurrency   int      `json:"batchConcurrency" mapstructure:"batchConcurrency"`
	MaxBatchSymbols    int      `json:"maxBatchSymbols" mapstructure:"maxBatchSymbols"`
	AlphaVantageMaxRPM int      `json:"alphaVantageMaxRpm" mapstructure:"alphaVantageMaxRpm"`
}

func (c *EnvConfig) IsProduction() bool {
	return c.Environment == "production"
}
