package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath          = "."
	defaultMessagingHost = "wa.me"
	defaultPageSize      = 12
	defaultHeroImage     = "default-hero.jpg"
	defaultCurrency      = "EGP"
	defaultCurrencyAr    = "جنيه"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Catalog configuration for the static menu document
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	// Assets configuration for images served alongside the menu
	Assets AssetsConfig `json:"assets" yaml:"assets"`

	// Ordering configuration for the outbound messaging handoff
	Ordering OrderingConfig `json:"ordering" yaml:"ordering"`

	// Pricing configuration for bilingual price rendering
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Menu configuration for browsing behavior
	Menu MenuConfig `json:"menu" yaml:"menu"`

	// QRCode configuration for order handoff QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// CatalogConfig defines where the static menu catalog is loaded from
type CatalogConfig struct {
	Path string `json:"path" yaml:"path"`
}

// AssetsConfig defines static image serving and the hero fallback
type AssetsConfig struct {
	Dir         string `json:"dir" yaml:"dir"`
	DefaultHero string `json:"defaultHero" yaml:"defaultHero"`
}

// OrderingConfig defines the messaging deep-link target for order handoff
type OrderingConfig struct {
	// Host of the messaging deep-link service, e.g. "wa.me"
	MessagingHost string `json:"messagingHost" yaml:"messagingHost"`

	// Phone is the recipient number in international format without "+"
	Phone string `json:"phone" yaml:"phone"`
}

// PricingConfig defines the currency literals used when formatting prices
type PricingConfig struct {
	Currency   string `json:"currency" yaml:"currency"`
	CurrencyAr string `json:"currencyAr" yaml:"currencyAr"`
}

// MenuConfig defines menu browsing defaults
type MenuConfig struct {
	// PageSize is the visible-count cap applied when no explicit limit is requested
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: ORDERING_MESSAGINGHOST -> ordering.messagingHost
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Ordering.Phone) == "" {
		return nil, errors.New("ordering.phone is required")
	}
	if strings.TrimSpace(cfg.Ordering.MessagingHost) == "" {
		cfg.Ordering.MessagingHost = defaultMessagingHost
	}
	if cfg.Menu.PageSize <= 0 {
		cfg.Menu.PageSize = defaultPageSize
	}
	if strings.TrimSpace(cfg.Assets.DefaultHero) == "" {
		cfg.Assets.DefaultHero = defaultHeroImage
	}
	if strings.TrimSpace(cfg.Pricing.Currency) == "" {
		cfg.Pricing.Currency = defaultCurrency
	}
	if strings.TrimSpace(cfg.Pricing.CurrencyAr) == "" {
		cfg.Pricing.CurrencyAr = defaultCurrencyAr
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
