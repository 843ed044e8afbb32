package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "jobagg"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"
)

// Config carries runtime defaults and the provider credentials. A
// missing credential disables that provider; it never fails the run.
type Config struct {
	DefaultCountries []string `json:"default_countries"`
	DefaultDays      int      `json:"default_days"`
	DefaultPageSize  int      `json:"default_page_size"`
	FetchTimeoutSecs int      `json:"fetch_timeout_seconds"`
	CacheTTLMinutes  int      `json:"cache_ttl_minutes"`
	RedisURL         string   `json:"redis_url"`

	RapidAPIKey  string `json:"rapidapi_key"`
	JoobleKey    string `json:"jooble_key"`
	AdzunaAppID  string `json:"adzuna_app_id"`
	AdzunaAppKey string `json:"adzuna_app_key"`
	USAJobsEmail string `json:"usajobs_email"`
	USAJobsKey   string `json:"usajobs_api_key"`
}

func DefaultConfig() Config {
	return Config{
		DefaultCountries: splitCSV(envString("JOBAGG_DEFAULT_COUNTRIES", "")),
		DefaultDays:      envInt("JOBAGG_DEFAULT_DAYS", 7),
		DefaultPageSize:  envInt("JOBAGG_DEFAULT_PAGE_SIZE", 25),
		FetchTimeoutSecs: envInt("JOBAGG_FETCH_TIMEOUT", 20),
		CacheTTLMinutes:  envInt("JOBAGG_CACHE_TTL_MINUTES", 10),
		RedisURL:         envString("REDIS_URL", ""),
		RapidAPIKey:      envString("RAPIDAPI_KEY", ""),
		JoobleKey:        envString("JOOBLE_KEY", ""),
		AdzunaAppID:      envString("ADZUNA_APP_ID", ""),
		AdzunaAppKey:     envString("ADZUNA_API_KEY", ""),
		USAJobsEmail:     envString("USAJOBS_EMAIL", ""),
		USAJobsKey:       envString("USAJOBS_API_KEY", ""),
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

// Load reads the config file on top of env-derived defaults. A missing
// file is not an error.
func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte(""), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadProxies resolves the proxy list: flag value, then env, then the
// proxies file.
func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("JOBAGG_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
