package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds environment driven configuration values.
// The Gemini API key should never have a default inside code and must be provided
// via the config file or the environment.
type AppConfig struct {
	AppPort string

	// Gin framework configuration
	GinMode string
	GinPath string

	// CORS / throttling
	AllowedOrigins     []string
	RateLimitPerMinute int

	// Engine constants
	WarningThresholdHours int
	AlertThresholdHours   int
	CheckinRewardPoints   int
	XPPerCheckin          int
	BaseCoinBonus         int
	VIPCoinBonus          int
	ReplyDelaySeconds     int
	SweepIntervalMinutes  int
	DefaultLanguage       string

	// Gemini generative-text service
	GeminiAPIKey string
	GeminiModel  string

	// Redis for state persistence
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// WarningThreshold returns the warning threshold as a duration.
func (c AppConfig) WarningThreshold() time.Duration {
	return time.Duration(c.WarningThresholdHours) * time.Hour
}

// AlertThreshold returns the alert threshold as a duration.
func (c AppConfig) AlertThreshold() time.Duration {
	return time.Duration(c.AlertThresholdHours) * time.Hour
}

// ReplyDelay returns the artificial delay before a simulated friend reply is appended.
func (c AppConfig) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelaySeconds) * time.Second
}

// SweepInterval returns the period of the background streak expiry sweeper.
func (c AppConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalMinutes) * time.Minute
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// loadJSONConfig reads the JSON file into cfg if present. Returns error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		if v, ok := m[key]; ok {
			switch t := v.(type) {
			case float64:
				return int(t)
			case int:
				return t
			case json.Number:
				i, _ := t.Int64()
				return int(i)
			}
		}
		return 0
	}
	getBool := func(m map[string]any, key string) bool {
		if v, ok := m[key]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
		return false
	}
	getStringSlice := func(m map[string]any, key string) []string {
		if v, ok := m[key]; ok {
			if arr, ok := v.([]any); ok {
				res := make([]string, 0, len(arr))
				for _, it := range arr {
					if s, ok := it.(string); ok {
						res = append(res, s)
					}
				}
				return res
			}
		}
		return nil
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		if v := getInt(app, "RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := getStringSlice(app, "AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if g, ok := raw["gin"].(map[string]any); ok {
		if v := getString(g, "Mode"); v != "" {
			out.GinMode = v
		}
		if v := getString(g, "LogPath"); v != "" {
			out.GinPath = v
		}
	}

	if eng, ok := raw["engine"].(map[string]any); ok {
		if v := getInt(eng, "WarningThresholdHours"); v != 0 {
			out.WarningThresholdHours = v
		}
		if v := getInt(eng, "AlertThresholdHours"); v != 0 {
			out.AlertThresholdHours = v
		}
		if v := getInt(eng, "CheckinRewardPoints"); v != 0 {
			out.CheckinRewardPoints = v
		}
		if v := getInt(eng, "XPPerCheckin"); v != 0 {
			out.XPPerCheckin = v
		}
		if v := getInt(eng, "BaseCoinBonus"); v != 0 {
			out.BaseCoinBonus = v
		}
		if v := getInt(eng, "VIPCoinBonus"); v != 0 {
			out.VIPCoinBonus = v
		}
		if v := getInt(eng, "ReplyDelaySeconds"); v != 0 {
			out.ReplyDelaySeconds = v
		}
		if v := getInt(eng, "SweepIntervalMinutes"); v != 0 {
			out.SweepIntervalMinutes = v
		}
		if v := getString(eng, "DefaultLanguage"); v != "" {
			out.DefaultLanguage = v
		}
	}

	if gm, ok := raw["gemini"].(map[string]any); ok {
		out.GeminiAPIKey = getString(gm, "APIKey")
		if v := getString(gm, "Model"); v != "" {
			out.GeminiModel = v
		}
	}

	if rds, ok := raw["redis"].(map[string]any); ok {
		out.RedisHost = getString(rds, "RedisHost")
		if v := getInt(rds, "RedisPort"); v != 0 {
			out.RedisPort = v
		}
		if v := getInt(rds, "RedisDB"); v != 0 {
			out.RedisDB = v
		}
		out.RedisPassword = getString(rds, "RedisPassword")
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		if v := getString(lg, "Level"); v != "" {
			out.LogLevel = v
		}
		if v := getString(lg, "Path"); v != "" {
			out.LogPath = v
		}
		if v := getString(lg, "GinMode"); v != "" {
			out.GinMode = v
		}
		if v := getString(lg, "GinPath"); v != "" {
			out.GinPath = v
		}
		if v := getInt(lg, "MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := getInt(lg, "MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := getInt(lg, "MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		out.LogCompress = getBool(lg, "Compress")
	}

	return nil
}

// applyDefaults sets sane defaults for zero-value fields.
func applyDefaults(c *AppConfig) {
	if c.AppPort == "" {
		c.AppPort = "8080"
	}
	if c.GinMode == "" {
		c.GinMode = "release"
	}
	if c.GinPath == "" {
		c.GinPath = "logs/go_gin.log"
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = 60
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	if c.WarningThresholdHours == 0 {
		c.WarningThresholdHours = 24
	}
	if c.AlertThresholdHours == 0 {
		c.AlertThresholdHours = 48
	}
	if c.CheckinRewardPoints == 0 {
		c.CheckinRewardPoints = 10
	}
	if c.XPPerCheckin == 0 {
		c.XPPerCheckin = 25
	}
	if c.BaseCoinBonus == 0 {
		c.BaseCoinBonus = 10
	}
	if c.VIPCoinBonus == 0 {
		c.VIPCoinBonus = 20
	}
	if c.ReplyDelaySeconds == 0 {
		c.ReplyDelaySeconds = 2
	}
	if c.SweepIntervalMinutes == 0 {
		c.SweepIntervalMinutes = 30
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-3-flash-preview"
	}
	if c.RedisHost == "" {
		c.RedisHost = "127.0.0.1"
	}
	if c.RedisPort == 0 {
		c.RedisPort = 6379
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogMaxSizeMB == 0 {
		c.LogMaxSizeMB = 100
	}
	if c.LogMaxBackups == 0 {
		c.LogMaxBackups = 3
	}
	if c.LogMaxAgeDays == 0 {
		c.LogMaxAgeDays = 7
	}
}

// applyEnvOverrides maps known environment variables onto config values when present.
func applyEnvOverrides(c *AppConfig) {
	if v := getEnv("APP_PORT", ""); v != "" {
		c.AppPort = v
	}
	if v := getEnv("GIN_MODE", ""); v != "" {
		c.GinMode = v
	}
	if v := getEnv("GIN_PATH", ""); v != "" {
		c.GinPath = v
	}
	if v := getEnv("CORS_ALLOWED_ORIGINS", ""); v != "" {
		c.AllowedOrigins = splitAndTrim(v)
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		c.RateLimitPerMinute = parseIntOr(v, c.RateLimitPerMinute)
	}
	if v := getEnv("WARNING_THRESHOLD_HOURS", ""); v != "" {
		c.WarningThresholdHours = parseIntOr(v, c.WarningThresholdHours)
	}
	if v := getEnv("ALERT_THRESHOLD_HOURS", ""); v != "" {
		c.AlertThresholdHours = parseIntOr(v, c.AlertThresholdHours)
	}
	if v := getEnv("CHECKIN_REWARD_POINTS", ""); v != "" {
		c.CheckinRewardPoints = parseIntOr(v, c.CheckinRewardPoints)
	}
	if v := getEnv("XP_PER_CHECKIN", ""); v != "" {
		c.XPPerCheckin = parseIntOr(v, c.XPPerCheckin)
	}
	if v := getEnv("BASE_COIN_BONUS", ""); v != "" {
		c.BaseCoinBonus = parseIntOr(v, c.BaseCoinBonus)
	}
	if v := getEnv("VIP_COIN_BONUS", ""); v != "" {
		c.VIPCoinBonus = parseIntOr(v, c.VIPCoinBonus)
	}
	if v := getEnv("REPLY_DELAY_SECONDS", ""); v != "" {
		c.ReplyDelaySeconds = parseIntOr(v, c.ReplyDelaySeconds)
	}
	if v := getEnv("SWEEP_INTERVAL_MINUTES", ""); v != "" {
		c.SweepIntervalMinutes = parseIntOr(v, c.SweepIntervalMinutes)
	}
	if v := getEnv("DEFAULT_LANGUAGE", ""); v != "" {
		c.DefaultLanguage = v
	}
	if v := getEnv("GEMINI_API_KEY", ""); v != "" {
		c.GeminiAPIKey = v
	}
	if v := getEnv("GEMINI_MODEL", ""); v != "" {
		c.GeminiModel = v
	}
	if v := getEnv("REDIS_HOST", ""); v != "" {
		c.RedisHost = v
	}
	if v := getEnv("REDIS_PORT", ""); v != "" {
		c.RedisPort = parseIntOr(v, c.RedisPort)
	}
	if v := getEnv("REDIS_DB", ""); v != "" {
		c.RedisDB = parseIntOr(v, c.RedisDB)
	}
	if v := getEnv("REDIS_PASSWORD", ""); v != "" {
		c.RedisPassword = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		c.LogLevel = v
	}
	if v := getEnv("LOG_PATH", ""); v != "" {
		c.LogPath = v
	}
	if v := getEnv("LOG_MAX_SIZE_MB", ""); v != "" {
		c.LogMaxSizeMB = parseIntOr(v, c.LogMaxSizeMB)
	}
	if v := getEnv("LOG_MAX_BACKUPS", ""); v != "" {
		c.LogMaxBackups = parseIntOr(v, c.LogMaxBackups)
	}
	if v := getEnv("LOG_MAX_AGE_DAYS", ""); v != "" {
		c.LogMaxAgeDays = parseIntOr(v, c.LogMaxAgeDays)
	}
	if v := getEnv("LOG_COMPRESS", ""); v != "" {
		c.LogCompress = v == "true"
	}
}

func parseIntOr(val string, fallback int) int {
	i, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return i
}

func splitAndTrim(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
