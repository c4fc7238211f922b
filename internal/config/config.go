package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"

	"buttongroup/internal/domain"
	"buttongroup/internal/eventbus"
	"buttongroup/internal/ui/logic"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version" yaml:"version"`
	FragmentID string         `toml:"fragment_id,omitempty" yaml:"fragment_id,omitempty"`
	Widgets    []WidgetConfig `toml:"widgets" yaml:"widgets"`
	UISettings UISettings     `toml:"ui" yaml:"ui"`
}

// WidgetConfig describes one button group
type WidgetConfig struct {
	ID                     string         `toml:"id,omitempty" yaml:"id,omitempty"`
	Label                  string         `toml:"label,omitempty" yaml:"label,omitempty"`
	ClickMode              string         `toml:"click_mode" yaml:"click_mode"`
	SelectionVisualization string         `toml:"selection_visualization,omitempty" yaml:"selection_visualization,omitempty"`
	Default                []int          `toml:"default" yaml:"default"`
	FormID                 string         `toml:"form_id,omitempty" yaml:"form_id,omitempty"`
	Disabled               bool           `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	Options                []OptionConfig `toml:"options" yaml:"options"`
}

// OptionConfig describes one option of a button group
type OptionConfig struct {
	Content                   string `toml:"content" yaml:"content"`
	SelectedContent           string `toml:"selected_content,omitempty" yaml:"selected_content,omitempty"`
	DisableSelectionHighlight bool   `toml:"disable_selection_highlight,omitempty" yaml:"disable_selection_highlight,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowLabels  bool `toml:"show_labels" yaml:"show_labels"`
	HistorySize int  `toml:"history_size" yaml:"history_size"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	return &configService{
		filePath: DefaultPath(),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "buttongroup", "config.toml")
}

// Load loads the configuration from the default path.
// A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(path, cfg)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config, formatOf(path))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}
	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Widgets: len(cfg.Widgets)})
	}
}

// Format is a config file encoding
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes config bytes in the given format
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.UISettings.HistorySize <= 0 {
		cfg.UISettings.HistorySize = DefaultHistorySize
	}
	return &cfg, nil
}

// Marshal encodes a config in the given format
func Marshal(cfg *Config, format Format) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		data, err = toml.Marshal(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// ParseClickMode converts a config click mode name
func ParseClickMode(s string) (domain.ClickMode, error) {
	switch strings.ToLower(s) {
	case "", "single_select", "single":
		return domain.SingleSelect, nil
	case "multi_select", "multi":
		return domain.MultiSelect, nil
	}
	return 0, fmt.Errorf("unknown click mode %q", s)
}

// ParseSelectionVisualization converts a config visualization name
func ParseSelectionVisualization(s string) (domain.SelectionVisualization, error) {
	switch strings.ToLower(s) {
	case "", "only_selected":
		return domain.OnlySelected, nil
	case "all_up_to_selected":
		return domain.AllUpToSelected, nil
	}
	return 0, fmt.Errorf("unknown selection visualization %q", s)
}

// AssignIDs gives every widget without an ID a random one. Returns true if any were assigned.
func (c *Config) AssignIDs() bool {
	changed := false
	for i := range c.Widgets {
		if c.Widgets[i].ID == "" {
			c.Widgets[i].ID = uuid.NewString()
			changed = true
		}
	}
	return changed
}

// Element converts a widget config to its domain element
func (w WidgetConfig) Element() (*domain.Element, error) {
	mode, err := ParseClickMode(w.ClickMode)
	if err != nil {
		return nil, err
	}
	vis, err := ParseSelectionVisualization(w.SelectionVisualization)
	if err != nil {
		return nil, err
	}
	if len(w.Options) == 0 {
		return nil, fmt.Errorf("no options")
	}

	opts := make([]domain.Option, len(w.Options))
	for i, o := range w.Options {
		opts[i] = domain.Option{
			Content:                   o.Content,
			SelectedContent:           o.SelectedContent,
			DisableSelectionHighlight: o.DisableSelectionHighlight,
		}
	}
	el := &domain.Element{
		ID:                     w.ID,
		Label:                  w.Label,
		Options:                opts,
		ClickMode:              mode,
		Default:                append([]int{}, w.Default...),
		SelectionVisualization: vis,
		FormID:                 w.FormID,
		Disabled:               w.Disabled,
	}
	if err := logic.ValidateSelection(mode, len(opts), el.Default); err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	return el, nil
}

// Elements converts every widget, assigning missing IDs first
func (c *Config) Elements() ([]*domain.Element, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	elements := make([]*domain.Element, 0, len(c.Widgets))
	for _, w := range c.Widgets {
		el, err := w.Element()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return elements, nil
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	c.AssignIDs()

	var errs []error
	seen := make(map[string]bool)
	for i, w := range c.Widgets {
		name := w.ID
		if w.Label != "" {
			name = w.Label
		}
		if seen[w.ID] {
			errs = append(errs, fmt.Errorf("widget %d (%s): duplicate id %q", i, name, w.ID))
		}
		seen[w.ID] = true
		if _, err := w.Element(); err != nil {
			errs = append(errs, fmt.Errorf("widget %d (%s): %w", i, name, err))
		}
	}
	return errors.Join(errs...)
}

// DefaultHistorySize is the number of sync records kept for the history pager
const DefaultHistorySize = 200

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		FragmentID: "main",
		Widgets: []WidgetConfig{
			{
				ID:                     "rating",
				Label:                  "How was it?",
				ClickMode:              "single_select",
				SelectionVisualization: "all_up_to_selected",
				Default:                []int{},
				FormID:                 "feedback",
				Options: []OptionConfig{
					{Content: "☆", SelectedContent: "★"},
					{Content: "☆", SelectedContent: "★"},
					{Content: "☆", SelectedContent: "★"},
					{Content: "☆", SelectedContent: "★"},
					{Content: "☆", SelectedContent: "★"},
				},
			},
			{
				ID:        "tags",
				Label:     "What stood out?",
				ClickMode: "multi_select",
				Default:   []int{0},
				FormID:    "feedback",
				Options: []OptionConfig{
					{Content: "speed"},
					{Content: "docs"},
					{Content: ":material/bug_report:"},
					{Content: "design"},
				},
			},
			{
				ID:        "thumbs",
				Label:     "Recommend?",
				ClickMode: "single_select",
				Default:   []int{},
				Options: []OptionConfig{
					{Content: ":material/thumb_up:", SelectedContent: "yes!", DisableSelectionHighlight: true},
					{Content: ":material/thumb_down:", SelectedContent: "no!", DisableSelectionHighlight: true},
				},
			},
		},
		UISettings: UISettings{
			ShowLabels:  true,
			HistorySize: DefaultHistorySize,
		},
	}
}
