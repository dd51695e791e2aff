// Package config handles loading and writing autoanki configuration.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/f3rmion/autoanki/internal/anki"
	"github.com/f3rmion/autoanki/internal/httpx"
	"github.com/f3rmion/autoanki/internal/ldoce"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. AUTOANKI_ANKI_DECK.
const EnvPrefix = "AUTOANKI"

// Config holds all user configuration for autoanki.
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary" yaml:"dictionary"`
	Anki       AnkiConfig       `mapstructure:"anki" yaml:"anki"`
	UserAgent  string           `mapstructure:"user_agent" yaml:"user_agent"`
	Timeout    time.Duration    `mapstructure:"timeout" yaml:"timeout"` // Per request, e.g. "30s"
}

// DictionaryConfig points at the dictionary site.
type DictionaryConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// AnkiConfig holds the AnkiWeb session the notes are saved with. All values
// are copied from a logged-in browser session.
type AnkiConfig struct {
	Endpoint     string   `mapstructure:"endpoint" yaml:"endpoint"`
	CSRFToken    string   `mapstructure:"csrf_token" yaml:"csrf_token"`
	ModelID      string   `mapstructure:"mid" yaml:"mid"`   // Note type ID
	DeckID       string   `mapstructure:"deck" yaml:"deck"` // Target deck ID
	Cookies      []Cookie `mapstructure:"cookies" yaml:"cookies"`
	CookieHeader string   `mapstructure:"cookie" yaml:"cookie"` // Raw "a=1; b=2", appended to Cookies
}

// Cookie is one session cookie.
type Cookie struct {
	Name  string `mapstructure:"name" yaml:"name"`
	Value string `mapstructure:"value" yaml:"value"`
}

// SetDefaults registers every key so environment overrides are honored even
// when the config file leaves a key out.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.base_url", ldoce.DefaultBaseURL)
	v.SetDefault("anki.endpoint", anki.DefaultEndpoint)
	v.SetDefault("anki.csrf_token", "")
	v.SetDefault("anki.mid", "")
	v.SetDefault("anki.deck", "")
	v.SetDefault("anki.cookie", "")
	v.SetDefault("user_agent", httpx.DefaultUserAgent)
	v.SetDefault("timeout", httpx.DefaultTimeout)
}

// Read prepares v: defaults, .env, environment and the config file. An
// explicit file must exist; the default file is optional.
func Read(v *viper.Viper, file string) error {
	SetDefaults(v)

	// A missing .env is fine.
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		return nil
	}

	dir, err := DefaultDir()
	if err != nil {
		return err
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Decode decodes the configuration held by v without validating the session.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg, err := Decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing session value at once.
func (c *Config) Validate() error {
	var missing []string
	if c.Anki.CSRFToken == "" {
		missing = append(missing, "anki.csrf_token")
	}
	if c.Anki.ModelID == "" {
		missing = append(missing, "anki.mid")
	}
	if c.Anki.DeckID == "" {
		missing = append(missing, "anki.deck")
	}

	cookies, err := c.HTTPCookies()
	if err != nil {
		return err
	}
	if len(cookies) == 0 {
		missing = append(missing, "anki.cookies")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s (run 'autoanki init' to create a config file)", strings.Join(missing, ", "))
	}
	return nil
}

// HTTPCookies merges the listed cookies and the raw cookie header.
func (c *Config) HTTPCookies() ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	for _, ck := range c.Anki.Cookies {
		if ck.Name == "" || ck.Value == "" {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: ck.Name, Value: ck.Value})
	}

	if raw := strings.TrimSpace(c.Anki.CookieHeader); raw != "" {
		parsed, err := http.ParseCookie(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing anki.cookie: %w", err)
		}
		cookies = append(cookies, parsed...)
	}
	return cookies, nil
}

// Session builds the AnkiWeb session from the configuration.
func (c *Config) Session() (anki.Session, error) {
	cookies, err := c.HTTPCookies()
	if err != nil {
		return anki.Session{}, err
	}
	return anki.Session{
		CSRFToken: c.Anki.CSRFToken,
		ModelID:   c.Anki.ModelID,
		DeckID:    c.Anki.DeckID,
		Cookies:   cookies,
		UserAgent: c.UserAgent,
	}, nil
}

// DefaultDir returns the default configuration directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "autoanki"), nil
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// WriteTemplate writes a commented config template to path, creating its
// directory. An existing file is only replaced when force is set.
func WriteTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Template is the starting config written by 'autoanki init'.
const Template = `# autoanki configuration
#
# Every value under "anki" comes from a logged-in AnkiWeb session. Open the
# note editor (https://ankiuser.net/edit/), add a card with the browser's
# developer tools open, and copy the form fields and cookies of the
# "edit/save" request.
#
# Any key can be overridden from the environment, e.g.
#   AUTOANKI_ANKI_CSRF_TOKEN=... autoanki happy

dictionary:
  base_url: "https://www.ldoceonline.com/dictionary/"

anki:
  endpoint: "https://ankiuser.net/edit/save"
  csrf_token: ""
  mid: ""   # note type ID
  deck: ""  # deck ID
  cookies:
    - name: "ankiweb"
      value: ""
  # cookie: "ankiweb=...; has_auth=1"

timeout: 30s
`
