package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/GPTx-global/pricefeed/relayer/log"
	pricefeedtypes "github.com/GPTx-global/pricefeed/x/pricefeed/types"
)

// FileName is the name of the config file inside the relayer home.
const FileName = "config.toml"

type Config struct {
	Chain   ChainConfig    `toml:"chain"`
	Relayer RelayerConfig  `toml:"relayer"`
	Sources []SourceConfig `toml:"sources"`
}

type ChainConfig struct {
	ID       string `toml:"id"`
	Endpoint string `toml:"endpoint"`
}

// RelayerConfig holds the schedule of the relayer. Durations are in seconds.
type RelayerConfig struct {
	Address         string `toml:"address"`
	PingInterval    uint64 `toml:"ping_interval"`
	RelayInterval   uint64 `toml:"relay_interval"`
	ResolveDuration uint64 `toml:"resolve_duration"`
	MissedThreshold uint64 `toml:"missed_threshold"`
	// every MedianDuration-th relay also pushes median history, 0 disables
	MedianDuration    uint64 `toml:"median_duration"`
	DeviationDuration uint64 `toml:"deviation_duration"`
	HistorySize       int    `toml:"history_size"`
	Workers           int    `toml:"workers"`
	StartRequestID    uint64 `toml:"start_request_id"`
	// unsigned transactions are written here, empty means stdout
	Output string `toml:"output"`
}

// SourceConfig tells the relayer where to fetch the USD price of a symbol.
// Path is a gjson path into the JSON response.
type SourceConfig struct {
	Symbol string `toml:"symbol"`
	URL    string `toml:"url"`
	Path   string `toml:"path"`
}

// Default returns the config written on first start.
func Default() Config {
	return Config{
		Chain: ChainConfig{
			ID:       "pricefeed-1",
			Endpoint: "http://localhost:26657",
		},
		Relayer: RelayerConfig{
			PingInterval:      30,
			RelayInterval:     60,
			ResolveDuration:   10,
			MissedThreshold:   5,
			MedianDuration:    10,
			DeviationDuration: 10,
			HistorySize:       10,
			Workers:           runtime.NumCPU(),
			StartRequestID:    1,
		},
		Sources: []SourceConfig{},
	}
}

// Load reads <home>/config.toml, creating it with defaults when missing.
func Load(home string) (Config, error) {
	path := filepath.Join(home, FileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(path); err != nil {
			return Config{}, errors.Wrap(err, "failed to create default config")
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config file")
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}

	log.Infof("loaded config from %s", path)
	return cfg, nil
}

// Parse decodes TOML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse TOML")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// WriteDefault writes the default config into home unless one exists and
// returns its path.
func WriteDefault(home string) (string, error) {
	path := filepath.Join(home, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, errors.Errorf("config already exists: %s", path)
	}
	return path, createDefaultConfig(path)
}

func createDefaultConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, "failed to marshal TOML")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func (c Config) Validate() error {
	if c.Chain.ID == "" {
		return errors.New("chain ID is required")
	}

	if c.Chain.Endpoint == "" {
		return errors.New("chain endpoint is required")
	}

	if _, err := sdk.AccAddressFromBech32(c.Relayer.Address); err != nil {
		return errors.Wrap(err, "relayer address is invalid")
	}

	if c.Relayer.PingInterval == 0 {
		return errors.New("ping interval is required")
	}

	if c.Relayer.RelayInterval == 0 {
		return errors.New("relay interval is required")
	}

	if c.Relayer.HistorySize <= 0 {
		return errors.New("history size must be positive")
	}

	if c.Relayer.Workers <= 0 {
		return errors.New("workers must be positive")
	}

	seen := make(map[string]bool, len(c.Sources))
	for _, source := range c.Sources {
		if err := pricefeedtypes.ValidateSymbol(source.Symbol); err != nil {
			return err
		}
		if source.Symbol == pricefeedtypes.USD {
			return errors.Errorf("%s is the unit of account and has no source", pricefeedtypes.USD)
		}
		if seen[source.Symbol] {
			return errors.Errorf("duplicate source for %s", source.Symbol)
		}
		seen[source.Symbol] = true

		if !strings.HasPrefix(source.URL, "http://") && !strings.HasPrefix(source.URL, "https://") {
			return errors.Errorf("source url of %s must be http(s): %s", source.Symbol, source.URL)
		}
		if source.Path == "" {
			return errors.Errorf("source path of %s is required", source.Symbol)
		}
	}

	return nil
}

// Address is the relayer account. Validate guarantees it parses.
func (c Config) Address() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(c.Relayer.Address)
}

func (c Config) Source(symbol string) (SourceConfig, bool) {
	for _, source := range c.Sources {
		if source.Symbol == symbol {
			return source, true
		}
	}
	return SourceConfig{}, false
}

func (c Config) Symbols() []string {
	symbols := make([]string, len(c.Sources))
	for i, source := range c.Sources {
		symbols[i] = source.Symbol
	}
	return symbols
}

func (c Config) PingInterval() time.Duration {
	return time.Duration(c.Relayer.PingInterval) * time.Second
}

func (c Config) RelayInterval() time.Duration {
	return time.Duration(c.Relayer.RelayInterval) * time.Second
}

func (c Config) ResolveDuration() time.Duration {
	return time.Duration(c.Relayer.ResolveDuration) * time.Second
}

func (c Config) ChannelSize() int {
	return 1 << 10
}

func (c Config) Print() {
	log.Infof("%-15s: %s", "Chain ID", c.Chain.ID)
	log.Infof("%-15s: %s", "Chain Endpoint", c.Chain.Endpoint)
	log.Infof("%-15s: %s", "Address", c.Relayer.Address)
	log.Infof("%-15s: %s", "Ping Interval", c.PingInterval())
	log.Infof("%-15s: %s", "Relay Interval", c.RelayInterval())
	log.Infof("%-15s: %s", "Symbols", strings.Join(c.Symbols(), ","))
}
