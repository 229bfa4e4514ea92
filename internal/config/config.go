package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

// Config holds all application configuration.
//
// Precedence: defaults < YAML file < environment variables.
type Config struct {
	HTTP struct {
		Port    int    `yaml:"port"`
		GinMode string `yaml:"gin_mode"`
	} `yaml:"http"`
	Gemini struct {
		APIKey    string        `yaml:"api_key"`
		BaseURL   string        `yaml:"base_url"`
		Model     string        `yaml:"model"`
		ChatModel string        `yaml:"chat_model"`
		Mock      bool          `yaml:"mock"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"gemini"`
	Valuation struct {
		LoanToValue   float64       `yaml:"loan_to_value"`
		Ceiling       float64       `yaml:"ceiling"`
		Region        string        `yaml:"region"`
		Currency      string        `yaml:"currency"`
		Retailers     []string      `yaml:"retailers"`
		MaxAttempts   int           `yaml:"max_attempts"`
		RetryDelay    time.Duration `yaml:"retry_delay"`
		TrackedLimit  int           `yaml:"tracked_limit"`
		MaxPhotos     int           `yaml:"max_photos"`
		MaxImageBytes int           `yaml:"max_image_bytes"`
	} `yaml:"valuation"`
	Loan struct {
		MinPrincipal  int64   `yaml:"min_principal"`
		MaxPrincipal  int64   `yaml:"max_principal"`
		PrincipalStep int64   `yaml:"principal_step"`
		MonthlyRate   float64 `yaml:"monthly_rate"`
		Durations     []int   `yaml:"durations"`
	} `yaml:"loan"`
	Handoff struct {
		BaseURL string `yaml:"base_url"`
		Phone   string `yaml:"phone"`
	} `yaml:"handoff"`
	Catalog struct {
		SeedPath string `yaml:"seed_path"`
	} `yaml:"catalog"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable overrides
// and defaults. An empty path falls back to WETRADE_CONFIG, then config.yaml.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = getenvDefault("WETRADE_CONFIG", defaultConfigPath)
	}
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Port = n
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.HTTP.GinMode = v
	}
	// API_KEY is the variable name the storefront used before the split.
	for _, key := range []string{"API_KEY", "GEMINI_API_KEY"} {
		if v := os.Getenv(key); v != "" {
			cfg.Gemini.APIKey = v
		}
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("GEMINI_CHAT_MODEL"); v != "" {
		cfg.Gemini.ChatModel = v
	}
	if isTruthy(os.Getenv("VALUATION_GATEWAY_MOCK")) {
		cfg.Gemini.Mock = true
	}
	if v := os.Getenv("VALUATION_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Gemini.Timeout = d
		}
	}
	if v := os.Getenv("HANDOFF_PHONE"); v != "" {
		cfg.Handoff.Phone = v
	}
	if v := os.Getenv("CATALOG_SEED_PATH"); v != "" {
		cfg.Catalog.SeedPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.HTTP.GinMode == "" {
		cfg.HTTP.GinMode = "debug"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-3-pro-preview"
	}
	if cfg.Gemini.ChatModel == "" {
		cfg.Gemini.ChatModel = "gemini-3-flash-preview"
	}
	if cfg.Gemini.Timeout == 0 {
		cfg.Gemini.Timeout = 25 * time.Second
	}
	if cfg.Valuation.LoanToValue == 0 {
		cfg.Valuation.LoanToValue = 0.70
	}
	if cfg.Valuation.Ceiling == 0 {
		cfg.Valuation.Ceiling = 500000
	}
	if cfg.Valuation.Region == "" {
		cfg.Valuation.Region = "Nigeria"
	}
	if cfg.Valuation.Currency == "" {
		cfg.Valuation.Currency = "Naira"
	}
	if len(cfg.Valuation.Retailers) == 0 {
		cfg.Valuation.Retailers = []string{"Slot", "Jumia", "Pointek", "Nairaland"}
	}
	if cfg.Valuation.MaxAttempts == 0 {
		cfg.Valuation.MaxAttempts = 2
	}
	if cfg.Valuation.RetryDelay == 0 {
		cfg.Valuation.RetryDelay = 500 * time.Millisecond
	}
	if cfg.Valuation.TrackedLimit == 0 {
		cfg.Valuation.TrackedLimit = 256
	}
	if cfg.Valuation.MaxPhotos == 0 {
		cfg.Valuation.MaxPhotos = 3
	}
	if cfg.Valuation.MaxImageBytes == 0 {
		cfg.Valuation.MaxImageBytes = 5 << 20
	}
	if cfg.Loan.MinPrincipal == 0 {
		cfg.Loan.MinPrincipal = 20000
	}
	if cfg.Loan.MaxPrincipal == 0 {
		cfg.Loan.MaxPrincipal = 500000
	}
	if cfg.Loan.PrincipalStep == 0 {
		cfg.Loan.PrincipalStep = 5000
	}
	if cfg.Loan.MonthlyRate == 0 {
		cfg.Loan.MonthlyRate = 0.15
	}
	if len(cfg.Loan.Durations) == 0 {
		cfg.Loan.Durations = []int{1, 2, 3, 4, 5, 6}
	}
	if cfg.Handoff.BaseURL == "" {
		cfg.Handoff.BaseURL = "https://wa.me"
	}
	if cfg.Handoff.Phone == "" {
		cfg.Handoff.Phone = "2348000000000"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535")
	}
	if c.Valuation.LoanToValue <= 0 || c.Valuation.LoanToValue > 1 {
		return fmt.Errorf("valuation.loan_to_value must be in (0, 1]")
	}
	if c.Valuation.Ceiling <= 0 {
		return fmt.Errorf("valuation.ceiling must be positive")
	}
	if c.Valuation.MaxAttempts < 1 {
		return fmt.Errorf("valuation.max_attempts must be at least 1")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive")
	}
	if c.Loan.MinPrincipal <= 0 || c.Loan.MaxPrincipal < c.Loan.MinPrincipal {
		return fmt.Errorf("loan principal bounds are invalid")
	}
	if c.Loan.MonthlyRate < 0 {
		return fmt.Errorf("loan.monthly_rate must not be negative")
	}
	for _, d := range c.Loan.Durations {
		if d <= 0 {
			return fmt.Errorf("loan.durations must be positive, got %d", d)
		}
	}
	if strings.TrimSpace(c.Handoff.Phone) == "" {
		return fmt.Errorf("handoff.phone is required")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
