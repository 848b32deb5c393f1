// Package config loads and validates the tool configuration. All
// defaulting happens here; the pipeline packages receive a fully
// resolved policy and never fall back on their own.
package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Transform style names accepted by the naming policy.
const (
	TransformPreserve = "preserve"
	TransformCamel    = "camel"
	TransformPascal   = "pascal"
)

// Policy is the resolved naming and emission policy the pipeline
// consumes.
type Policy struct {
	// TypeNameTransform styles top-level type names.
	TypeNameTransform string `mapstructure:"typeNameTransform" yaml:"typeNameTransform" validate:"oneof=preserve camel pascal"`

	// MemberNameTransform styles member names.
	MemberNameTransform string `mapstructure:"memberNameTransform" yaml:"memberNameTransform" validate:"oneof=preserve camel pascal"`

	// ExplicitNameOverrides maps stable-ID keys to exact output names,
	// bypassing the style transform for those symbols.
	ExplicitNameOverrides map[string]string `mapstructure:"explicitNameOverrides" yaml:"explicitNameOverrides"`

	// IncludeInternalTypes also emits internal and protected types.
	IncludeInternalTypes bool `mapstructure:"includeInternalTypes" yaml:"includeInternalTypes"`

	// AllowConstructorConstraintLoss downgrades the new()-constraint
	// diagnostic from ERROR to WARNING.
	AllowConstructorConstraintLoss bool `mapstructure:"allowConstructorConstraintLoss" yaml:"allowConstructorConstraintLoss"`
}

// Config is the full tool configuration: the policy plus the I/O
// settings the CLI needs.
type Config struct {
	// Inputs are the metadata export files to load.
	Inputs []string `mapstructure:"inputs" yaml:"inputs" validate:"min=1,dive,required"`

	// OutDir receives the declaration files and sidecar.
	OutDir string `mapstructure:"outDir" yaml:"outDir" validate:"required"`

	// SidecarFormat selects the binding sidecar encoding.
	SidecarFormat string `mapstructure:"sidecarFormat" yaml:"sidecarFormat" validate:"oneof=json yaml"`

	Policy Policy `mapstructure:"policy" yaml:"policy"`
}

// Default returns the configuration used when no file overrides a
// setting.
func Default() Config {
	return Config{
		OutDir:        "types",
		SidecarFormat: "json",
		Policy: Policy{
			TypeNameTransform:   TransformPreserve,
			MemberNameTransform: TransformCamel,
		},
	}
}

// Load reads the configuration file (YAML), applies defaults, and
// validates the result. An empty path loads pure defaults, which still
// fail validation until inputs are supplied by flags.
//
// The key delimiter is "::" rather than viper's default "." so that
// stable-ID override keys ("Lib|My.Ns.Widget") survive as single map
// keys instead of being exploded into nested settings.
func Load(path string) (Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	def := Default()
	v.SetDefault("outDir", def.OutDir)
	v.SetDefault("sidecarFormat", def.SidecarFormat)
	v.SetDefault("policy::typeNameTransform", def.Policy.TypeNameTransform)
	v.SetDefault("policy::memberNameTransform", def.Policy.MemberNameTransform)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}

	// Viper lowercases keys, which would corrupt the case-sensitive
	// stable-ID keys; the overrides map is re-read from the raw YAML.
	if path != "" {
		overrides, err := loadOverrides(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Policy.ExplicitNameOverrides = overrides
	}
	return cfg, nil
}

func loadOverrides(path string) (map[string]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var doc struct {
		Policy struct {
			ExplicitNameOverrides map[string]string `yaml:"explicitNameOverrides"`
		} `yaml:"policy"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "decoding config %s", path)
	}
	return doc.Policy.ExplicitNameOverrides, nil
}

// Validate checks the resolved configuration. Called after flag
// overrides are merged in.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}
