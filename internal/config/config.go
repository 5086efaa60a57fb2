// Package config defines the persisted pastedown settings and their
// viper-backed load/save cycle.
//
// Precedence (lowest → highest): defaults → config file → PASTEDOWN_* env
// vars. The file is created on first save; the service reads the config once
// at startup and the settings surface mutates it through Save.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// NoAppAction selects what the fallback workflow does with a generated
// artifact when no target application is in the foreground. An enum rather
// than a bool so further actions can be added without a schema break.
type NoAppAction string

const (
	ActionOpen      NoAppAction = "open"
	ActionSave      NoAppAction = "save"
	ActionClipboard NoAppAction = "clipboard"
	ActionNone      NoAppAction = "none"
)

// ParseNoAppAction maps a config string onto a NoAppAction, defaulting to open.
func ParseNoAppAction(s string) NoAppAction {
	switch NoAppAction(strings.ToLower(strings.TrimSpace(s))) {
	case ActionSave:
		return ActionSave
	case ActionClipboard:
		return ActionClipboard
	case ActionNone:
		return ActionNone
	default:
		return ActionOpen
	}
}

// AppBinding ties one application identity to an extensible workflow.
// ID is matched against target identities (lowercased executable path,
// bundle id or process name). WindowPatterns, when present, restrict the
// binding to windows whose title matches at least one pattern
// (case-insensitive regex).
type AppBinding struct {
	Name           string   `mapstructure:"name"`
	ID             string   `mapstructure:"id"`
	WindowPatterns []string `mapstructure:"window_patterns"`
}

// ExtensibleWorkflow is one user-configurable binding set for a generic
// content-delivery pipeline (html / md / latex / file).
type ExtensibleWorkflow struct {
	Enabled bool              `mapstructure:"enabled"`
	Apps    []AppBinding      `mapstructure:"apps"`
	Options map[string]string `mapstructure:"options"`
}

// Config is the full persisted settings document.
type Config struct {
	Hotkey         string   `mapstructure:"hotkey"`
	PandocPath     string   `mapstructure:"pandoc_path"`
	ReferenceDocx  string   `mapstructure:"reference_docx"`
	SaveDir        string   `mapstructure:"save_dir"`
	TempDir        string   `mapstructure:"temp_dir"`
	KeepFile       bool     `mapstructure:"keep_file"`
	Notify         bool     `mapstructure:"notify"`
	EnableExcel    bool     `mapstructure:"enable_excel"`
	ExcelKeepFmt   bool     `mapstructure:"excel_keep_format"`
	ExcelCodeBG    bool     `mapstructure:"excel_inline_code_cell_bg"`
	MoveCursorEnd  bool     `mapstructure:"move_cursor_to_end"`
	KeepFormula    bool     `mapstructure:"keep_original_formula"`
	LatexReplace   bool     `mapstructure:"enable_latex_replacements"`
	MdNoIndent     bool     `mapstructure:"md_disable_first_para_indent"`
	HTMLNoIndent   bool     `mapstructure:"html_disable_first_para_indent"`
	NoAppAction    string   `mapstructure:"no_app_action"`
	PandocFilters  []string `mapstructure:"pandoc_filters"`
	RequestHeaders []string `mapstructure:"pandoc_request_headers"`

	Workflows map[string]ExtensibleWorkflow `mapstructure:"extensible_workflows"`
}

// Action returns the parsed no-app action enum.
func (c *Config) Action() NoAppAction { return ParseNoAppAction(c.NoAppAction) }

// Dir returns the directory holding the config file.
func Dir() string {
	if d := os.Getenv("PASTEDOWN_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "pastedown")
}

// DataDir returns the per-user writable data directory, used for the fixed
// reused temp files the scripted placers write.
func DataDir() string {
	if d := os.Getenv("PASTEDOWN_DATA_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return filepath.Join(home, ".local", "share", "pastedown")
}

func defaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	v.SetDefault("hotkey", "ctrl+shift+b")
	v.SetDefault("pandoc_path", "pandoc")
	v.SetDefault("save_dir", filepath.Join(home, "Documents", "pastedown"))
	v.SetDefault("keep_file", false)
	v.SetDefault("notify", true)
	v.SetDefault("enable_excel", true)
	v.SetDefault("excel_keep_format", true)
	v.SetDefault("excel_inline_code_cell_bg", true)
	v.SetDefault("move_cursor_to_end", true)
	v.SetDefault("keep_original_formula", false)
	v.SetDefault("enable_latex_replacements", true)
	v.SetDefault("md_disable_first_para_indent", true)
	v.SetDefault("html_disable_first_para_indent", true)
	v.SetDefault("no_app_action", string(ActionOpen))
	v.SetDefault("pandoc_filters", []string{})
}

// Load reads the config file (creating viper defaults for missing keys) and
// returns the parsed Config. A missing file is not an error.
func Load(path string) (*Config, *viper.Viper, error) {
	v := viper.New()
	defaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pastedown")
		v.SetConfigType("yaml")
		v.AddConfigPath(Dir())
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("PASTEDOWN")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, nil, err
	}
	return &cfg, v, nil
}

// Save writes the current settings back to disk. Used by the self-healing
// converter path fix and by the settings surface.
func Save(v *viper.Viper, cfg *Config) error {
	v.Set("pandoc_path", cfg.PandocPath)
	v.Set("save_dir", cfg.SaveDir)
	v.Set("keep_file", cfg.KeepFile)
	v.Set("no_app_action", cfg.NoAppAction)

	target := v.ConfigFileUsed()
	if target == "" {
		if err := os.MkdirAll(Dir(), 0o755); err != nil {
			return fmt.Errorf("config dir: %w", err)
		}
		target = filepath.Join(Dir(), "pastedown.yaml")
	}
	if err := v.WriteConfigAs(target); err != nil {
		return fmt.Errorf("config save: %w", err)
	}
	return nil
}

// Validate enforces the route-build invariant: at most one enabled workflow
// may claim a given (app id, window pattern) pair. Conflicts are a
// configuration error, not a runtime concern.
func Validate(cfg *Config) error {
	type claim struct{ workflow, pattern string }
	claimed := make(map[string]claim)

	for name, wf := range cfg.Workflows {
		if !wf.Enabled {
			continue
		}
		for _, app := range wf.Apps {
			id := strings.ToLower(strings.TrimSpace(app.ID))
			if id == "" {
				continue
			}
			patterns := app.WindowPatterns
			if len(patterns) == 0 {
				patterns = []string{""}
			}
			for _, pat := range patterns {
				key := id + "\x00" + strings.ToLower(pat)
				if prev, ok := claimed[key]; ok && prev.workflow != name {
					return fmt.Errorf("config: app %q (pattern %q) bound to both %q and %q",
						id, pat, prev.workflow, name)
				}
				claimed[key] = claim{workflow: name, pattern: pat}
			}
		}
	}
	return nil
}
