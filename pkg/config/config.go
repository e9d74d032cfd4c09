/*
Package config manages the TOML config for wordhunt.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordhunt/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Search SearchConfig   `toml:"search"`
	Dict   DictConfig     `toml:"dict"`
	Server ServerConfig   `toml:"server"`
	CLI    CliConfig      `toml:"cli"`
	Store  StoreConfig    `toml:"store"`
	Remote []RemoteConfig `toml:"remote"`
}

// SearchConfig holds the default query parameters.
type SearchConfig struct {
	MinLen    int  `toml:"min_len"`
	MaxLen    int  `toml:"max_len"`
	BeamWidth int  `toml:"beam_width"`
	ResultCap int  `toml:"result_cap"`
	Pairs     bool `toml:"pairs"`
}

// DictConfig selects the local word sources.
type DictConfig struct {
	Builtin bool     `toml:"builtin"`
	Files   []string `toml:"files"`
	DataDir string   `toml:"data_dir"`
}

// ServerConfig bounds what IPC clients may ask for.
type ServerConfig struct {
	MaxBeamWidth int `toml:"max_beam_width"`
	MaxResultCap int `toml:"max_result_cap"`
	MaxLetters   int `toml:"max_letters"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	Color        bool `toml:"color"`
}

// StoreConfig points at the bolt file persisting user sources.
// An empty path disables persistence.
type StoreConfig struct {
	Path string `toml:"path"`
}

// RemoteConfig describes one word source fetched at startup.
type RemoteConfig struct {
	Name           string   `toml:"name"`
	Kind           string   `toml:"kind"`
	Enabled        bool     `toml:"enabled"`
	Addr           string   `toml:"addr"`
	Username       string   `toml:"username"`
	Password       string   `toml:"password"`
	DB             int      `toml:"db"`
	Key            string   `toml:"key"`
	URLs           []string `toml:"urls"`
	Index          string   `toml:"index"`
	Field          string   `toml:"field"`
	MaxWords       int      `toml:"max_words"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordhunt
// 2. ~/Library/Application Support/wordhunt (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", utils.AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", utils.AppName)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordhunt/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MinLen:    1,
			MaxLen:    99,
			BeamWidth: 200,
			ResultCap: 200,
			Pairs:     false,
		},
		Dict: DictConfig{
			Builtin: true,
			Files:   []string{},
			DataDir: "data",
		},
		Server: ServerConfig{
			MaxBeamWidth: 2000,
			MaxResultCap: 2000,
			MaxLetters:   64,
		},
		CLI: CliConfig{
			DefaultLimit: 50,
			Color:        true,
		},
		Store:  StoreConfig{},
		Remote: []RemoteConfig{},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed value it can find and
// defaults the rest. Remote sources are only taken from a clean decode.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "store"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Store.Path = val
		}
	}
	return config, nil
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "min_len"); ok {
		search.MinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_len"); ok {
		search.MaxLen = val
	}
	if val, ok := utils.ExtractInt64(data, "beam_width"); ok {
		search.BeamWidth = val
	}
	if val, ok := utils.ExtractInt64(data, "result_cap"); ok {
		search.ResultCap = val
	}
	if val, ok := utils.ExtractBool(data, "pairs"); ok {
		search.Pairs = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractBool(data, "builtin"); ok {
		dict.Builtin = val
	}
	if val, ok := utils.ExtractStringSlice(data, "files"); ok {
		dict.Files = val
	}
	if val, ok := utils.ExtractString(data, "data_dir"); ok {
		dict.DataDir = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_beam_width"); ok {
		server.MaxBeamWidth = val
	}
	if val, ok := utils.ExtractInt64(data, "max_result_cap"); ok {
		server.MaxResultCap = val
	}
	if val, ok := utils.ExtractInt64(data, "max_letters"); ok {
		server.MaxLetters = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the search defaults and saves to file
func (c *Config) Update(configPath string, beamWidth, resultCap *int, pairs *bool) error {
	if beamWidth != nil {
		c.Search.BeamWidth = *beamWidth
	}
	if resultCap != nil {
		c.Search.ResultCap = *resultCap
	}
	if pairs != nil {
		c.Search.Pairs = *pairs
	}
	return SaveConfig(c, configPath)
}

// EnabledRemotes returns the remote sources marked enabled.
func (c *Config) EnabledRemotes() []RemoteConfig {
	var out []RemoteConfig
	for _, r := range c.Remote {
		if r.Enabled {
			out = append(out, r)
		}
	}
	return out
}
