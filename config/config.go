package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/vocalabs/textprep/pkg/chinese"
	"github.com/vocalabs/textprep/textnorm"
)

// Application config structure
type AppConfig struct {
	Name     string `mapstructure:"service_name" validate:"required"`
	Version  string `mapstructure:"version" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"required"`
	LogFile  string `mapstructure:"log_file"`

	// text preparation
	Language         string `mapstructure:"language" validate:"required"`
	AddLanguageTag   bool   `mapstructure:"add_language_tag"`
	MinKeywordLength int    `mapstructure:"min_keyword_length" validate:"gte=1"`
	ExcludeSymbols   string `mapstructure:"exclude_symbols" validate:"required"`
	DictionaryPath   string `mapstructure:"dictionary_path"`
}

// reading config and initializing configs for application
func InitConfig() (*viper.Viper, error) {
	vConfig := viper.NewWithOptions(viper.KeyDelimiter("__"))

	vConfig.AddConfigPath(".")
	vConfig.SetConfigName(".env")
	path := os.Getenv("ENV_PATH")
	if path != "" {
		log.Printf("env path %v", path)
		vConfig.SetConfigFile(path)
	}
	vConfig.SetConfigType("env")
	vConfig.AutomaticEnv()

	setDefault(vConfig)
	if err := vConfig.ReadInConfig(); err != nil {
		log.Printf("Reading from env variables.")
	}

	return vConfig, nil
}

func setDefault(v *viper.Viper) {
	// setting all default values
	// keeping watch on https://github.com/spf13/viper/issues/188

	v.SetDefault("SERVICE_NAME", "textprep")
	v.SetDefault("VERSION", "0.1.0")
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("LANGUAGE", "zh")
	v.SetDefault("ADD_LANGUAGE_TAG", false)
	v.SetDefault("MIN_KEYWORD_LENGTH", 2)
	v.SetDefault("EXCLUDE_SYMBOLS", textnorm.DefaultExcludeSymbols)
	v.SetDefault("DICTIONARY_PATH", "")
}

// Getting application config from viper
func GetApplicationConfig(v *viper.Viper) (*AppConfig, error) {
	var config AppConfig
	err := v.Unmarshal(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}

	// validating the app config
	validate := validator.New()
	err = validate.Struct(&config)
	if err != nil {
		log.Printf("%+v\n", err)
		return nil, err
	}
	return &config, nil
}

// suffixRuleSpec is the on-disk shape of one unit rule.
type suffixRuleSpec struct {
	Mode    string `mapstructure:"mode"`
	Lengths []int  `mapstructure:"lengths"`
}

// SuffixRulesFromConfig decodes the optional suffix_rules table. When the
// section is absent the stock table applies.
func SuffixRulesFromConfig(v *viper.Viper) (map[string]textnorm.SuffixRule, error) {
	raw := v.Get("suffix_rules")
	if raw == nil {
		return textnorm.DefaultSuffixRules(), nil
	}

	var specs map[string]suffixRuleSpec
	if err := mapstructure.Decode(raw, &specs); err != nil {
		return nil, fmt.Errorf("failed to decode suffix rules: %w", err)
	}

	rules := make(map[string]textnorm.SuffixRule, len(specs))
	for suffix, spec := range specs {
		mode, err := chinese.ParseMode(spec.Mode)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mode for suffix %q: %w", suffix, err)
		}
		rules[suffix] = textnorm.SuffixRule{Mode: mode, Lengths: spec.Lengths}
	}
	return rules, nil
}
