// Package config loads company details and default tax rates via Viper,
// from an optional YAML file with environment overrides. The loaded values
// are plain structs passed into the normalizer per call, so two tenants can
// run side by side with different company blocks.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rezonia/gst-invoice/internal/model"
)

// envPrefix is the prefix for environment overrides,
// e.g. GSTINV_COMPANY_NAME, GSTINV_TAX_CGST_RATE.
const envPrefix = "GSTINV"

// TaxDefaults are the rates used when they cannot be back-computed from the
// submitted amounts, plus the fallback customer GSTIN.
type TaxDefaults struct {
	CGSTRate      float64 `mapstructure:"cgst_rate"`
	SGSTRate      float64 `mapstructure:"sgst_rate"`
	IGSTRate      float64 `mapstructure:"igst_rate"`
	CustomerGSTIN string  `mapstructure:"customer_gstin"`
}

// Layout holds document layout settings.
type Layout struct {
	MaxItemRows int    `mapstructure:"max_item_rows"`
	Currency    string `mapstructure:"currency"`
}

// Config is the full application configuration.
type Config struct {
	Company model.Company `mapstructure:"company"`
	Tax     TaxDefaults   `mapstructure:"tax"`
	Layout  Layout        `mapstructure:"layout"`
}

// Load reads configuration from the given file path (optional; "" skips the
// file) with environment variables taking precedence over file values and
// built-in defaults backing both.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration without touching files or the
// environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults are statically known; unmarshal cannot fail on them.
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("company.name", "GOPAL TENT HOUSE")
	v.SetDefault("company.address", "26, TINASHED, GOLMURI MARKET, JAMSHEDPUR, JHARKHAND")
	v.SetDefault("company.mobile", "7004829773, 9431330019")
	v.SetDefault("company.state", "Jharkhand")
	v.SetDefault("company.gstin", "20ABKPB5821F2ZA")
	v.SetDefault("company.state_code", "20")
	v.SetDefault("company.bank_details.ifsc", "CBI0282406")
	v.SetDefault("company.bank_details.account_number", "1843803988")
	v.SetDefault("company.bank_details.bank_name", "Central Bank of India Golmuri, Jamshedpur")

	v.SetDefault("tax.cgst_rate", 9.0)
	v.SetDefault("tax.sgst_rate", 9.0)
	v.SetDefault("tax.igst_rate", 18.0)
	v.SetDefault("tax.customer_gstin", "20AAATC2716R2ZS")

	v.SetDefault("layout.max_item_rows", 12)
	v.SetDefault("layout.currency", "Rs.")
}
