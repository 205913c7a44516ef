package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/townclerk"
	ConfigFileName    = "townclerk.yml"
)

// Config holds all townclerk configuration settings.
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIListLimitDefault is the page size applied when a listing request
	// carries no limit parameter
	APIListLimitDefault int `yaml:"api_list_limit_default" json:"api_list_limit_default"`

	// APIListLimitMax caps the page size of listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// SessionTokenTTL is the lifetime of session tokens in minutes
	SessionTokenTTL int `yaml:"session_token_ttl" json:"session_token_ttl"`

	// SessionCookieName is the cookie carrying the session token
	SessionCookieName string `yaml:"session_cookie_name" json:"session_cookie_name"`

	// AnnouncementsDir is a directory of Markdown files rendered on the
	// dashboard. Empty disables announcements.
	AnnouncementsDir string `yaml:"announcements_dir" json:"announcements_dir"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Fall back to defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment.
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values.
func newDefault() *Config {
	return &Config{
		TrustedProxies:      []string{},
		APIListLimitDefault: 20,
		APIListLimitMax:     100,
		SessionTokenTTL:     480,
		SessionCookieName:   "clerk_session",
		AnnouncementsDir:    "",
		sources:             make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CLERK_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "api_list_limit_default", "api_list_limit_max",
		"session_token_ttl", "session_cookie_name", "announcements_dir",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIListLimitDefault != 0 {
		c.APIListLimitDefault = file.APIListLimitDefault
		c.sources["api_list_limit_default"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.SessionTokenTTL != 0 {
		c.SessionTokenTTL = file.SessionTokenTTL
		c.sources["session_token_ttl"] = "file"
	}
	if file.SessionCookieName != "" {
		c.SessionCookieName = file.SessionCookieName
		c.sources["session_cookie_name"] = "file"
	}
	if file.AnnouncementsDir != "" {
		c.AnnouncementsDir = file.AnnouncementsDir
		c.sources["announcements_dir"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("CLERK_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("CLERK_API_LIST_LIMIT_DEFAULT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitDefault = i
			c.sources["api_list_limit_default"] = "environment"
		}
	}
	if val := os.Getenv("CLERK_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("CLERK_SESSION_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTokenTTL = i
			c.sources["session_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("CLERK_SESSION_COOKIE_NAME"); val != "" {
		c.SessionCookieName = val
		c.sources["session_cookie_name"] = "environment"
	}
	if val := os.Getenv("CLERK_ANNOUNCEMENTS_DIR"); val != "" {
		c.AnnouncementsDir = val
		c.sources["announcements_dir"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file.
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute.
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// SessionTTL returns the session token lifetime as a duration.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTokenTTL) * time.Minute
}

// IsTrustedProxy checks if an IP is from a trusted proxy.
func (c *Config) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.APIListLimitDefault < 1 {
		return fmt.Errorf("api_list_limit_default must be at least 1")
	}
	if c.APIListLimitMax < c.APIListLimitDefault {
		return fmt.Errorf("api_list_limit_max must not be below api_list_limit_default")
	}
	if c.SessionTokenTTL < 1 {
		return fmt.Errorf("session_token_ttl must be at least 1 minute")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "api_list_limit_default", Value: strconv.Itoa(c.APIListLimitDefault), Source: c.Source("api_list_limit_default")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
		{Name: "session_token_ttl", Value: strconv.Itoa(c.SessionTokenTTL), Source: c.Source("session_token_ttl")},
		{Name: "session_cookie_name", Value: c.SessionCookieName, Source: c.Source("session_cookie_name")},
		{Name: "announcements_dir", Value: c.AnnouncementsDir, Source: c.Source("announcements_dir")},
	}
}

// FormatText returns a text representation of the configuration.
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration.
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
