package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/trustme000777/niftymenu/pkg/menu"
)

// Config exposes the runtime settings shared by the CLI and the TUI.
type Config interface {
	// PrefsPath is the directory holding the preference record.
	PrefsPath() string
	// MenuPath is the markdown cheatsheet to load.
	MenuPath() string
	// MinQuery is the shortest search query that is resolved.
	MinQuery() int
	// TypoTolerance enables edit-distance matching when fuzzy search fails.
	TypoTolerance() bool
	// SearchItem is the title path of the item hosting the search field.
	SearchItem() string
}

// LoadConfig reads .niftymenu.yaml from NIFTYMENU_CONFIG_PATH or the working
// directory, layered over NIFTYMENU_* environment variables and defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("prefs", "~/.niftymenu")
	viper.SetDefault("menu", "")
	viper.SetDefault("search.min", 2)
	viper.SetDefault("search.typos", false)
	viper.SetDefault("search.item", menu.DefaultSearchItem)
	viper.SetConfigName(".niftymenu") // .yaml is implicit
	viper.SetEnvPrefix("NIFTYMENU")
	viper.AutomaticEnv()

	if override := os.Getenv("NIFTYMENU_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	prefsPath, err := homedir.Expand(viper.GetString("prefs"))
	if err != nil {
		return nil, fmt.Errorf("store: expand prefs path: %w", err)
	}
	menuPath, err := homedir.Expand(viper.GetString("menu"))
	if err != nil {
		return nil, fmt.Errorf("store: expand menu path: %w", err)
	}

	return &fileConfig{
		Prefs:  prefsPath,
		Menu:   menuPath,
		Min:    viper.GetInt("search.min"),
		Typos:  viper.GetBool("search.typos"),
		Search: viper.GetString("search.item"),
	}, nil
}

// StaticConfig returns a Config with fixed values, for tests and embedding.
func StaticConfig(prefsPath, menuPath string) Config {
	return &fileConfig{
		Prefs:  prefsPath,
		Menu:   menuPath,
		Min:    2,
		Search: menu.DefaultSearchItem,
	}
}

type fileConfig struct {
	Prefs  string `json:"prefs"`
	Menu   string `json:"menu"`
	Min    int    `json:"min"`
	Typos  bool   `json:"typos"`
	Search string `json:"search"`
}

func (f *fileConfig) PrefsPath() string   { return f.Prefs }
func (f *fileConfig) MenuPath() string    { return f.Menu }
func (f *fileConfig) MinQuery() int       { return f.Min }
func (f *fileConfig) TypoTolerance() bool { return f.Typos }
func (f *fileConfig) SearchItem() string  { return f.Search }
