package cli

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/glorpus-work/gofile/internal/logger"
	"github.com/glorpus-work/gofile/pkg/api"
	"github.com/glorpus-work/gofile/pkg/archive"
	"github.com/glorpus-work/gofile/pkg/config"
	"github.com/glorpus-work/gofile/pkg/download"
	"github.com/glorpus-work/gofile/pkg/errors"
	"github.com/glorpus-work/gofile/pkg/fsutil"
	"github.com/glorpus-work/gofile/pkg/hooks"
	"github.com/glorpus-work/gofile/pkg/orchestrator"
)

// TokenEnvVar is the environment variable carrying the account token. It
// takes precedence over the token in the config file.
const TokenEnvVar = "GOFILE_TOKEN"

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	OutputDir  *string
)

// loadConfig loads the configuration honoring the global CLI flags.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
	if OutputDir != nil && *OutputDir != "" {
		cfg.Settings.OutputDir = *OutputDir
	}

	logger.InitLogger(cfg.Settings.LogLevel)
	logger.Debug("Configuration loaded", logger.Fields{"path": configPath})
	return cfg, nil
}

// resolveToken returns the account token, preferring the environment over the
// config file. Absence and a non-UTF-8 value are distinct errors.
func resolveToken(cfg *config.Config) (string, error) {
	if value, ok := os.LookupEnv(TokenEnvVar); ok {
		if !utf8.ValidString(value) {
			return "", errors.Wrap(errors.ErrTokenInvalid, TokenEnvVar)
		}
		if value != "" {
			logger.Debug("Using token from environment", logger.Fields{"var": TokenEnvVar})
			return value, nil
		}
	}
	if cfg.Settings.Token != "" {
		logger.Debug("Using token from config file")
		return cfg.Settings.Token, nil
	}
	return "", errors.Wrap(errors.ErrTokenMissing, TokenEnvVar)
}

// newOrchestrator wires the API client, transfer manager and optional extras
// for one CLI operation.
func newOrchestrator(cfg *config.Config, token string) (*orchestrator.Orchestrator, error) {
	hks := orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		// Simple, human-friendly output
		if e.Msg != "" {
			fmt.Printf("%s: %s (%s)\n", e.Phase, e.Name, e.Msg)
		} else {
			fmt.Printf("%s: %s\n", e.Phase, e.Name)
		}
	}}

	if cfg.Settings.OutputDir != "" {
		cfg.Settings.OutputDir = fsutil.ExpandHome(cfg.Settings.OutputDir)
		if err := fsutil.EnsureDir(cfg.Settings.OutputDir, fsutil.DirModeDefault); err != nil {
			return nil, err
		}
	}

	orch := orchestrator.New(
		api.New(cfg.Settings.APIURL, token, cfg.Settings.HTTPTimeout),
		download.NewManager(cfg.Settings.HTTPTimeout, "gofile/"+Version),
		hks,
	)
	orch.Token = token
	orch.OutputDir = cfg.Settings.OutputDir
	orch.Archive = archive.NewManager()

	if cfg.Settings.HooksDir != "" {
		executor := hooks.NewTengoExecutor()
		if err := hooks.LoadHooksFromDir(executor, cfg.Settings.HooksDir); err != nil {
			return nil, err
		}
		logger.Debug("Loaded hook scripts", logger.Fields{"dir": cfg.Settings.HooksDir})
		orch.HookManager = executor
	}

	return orch, nil
}
