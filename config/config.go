package config

import (
	"errors"
	"fmt"

	"github.com/daedaleanai/holbuild/log"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// Tools names the external executables. Each value may carry leading
// arguments, e.g. "fvm flutter".
type Tools struct {
	Protoc   string `mapstructure:"protoc" yaml:"protoc"`
	WasmPack string `mapstructure:"wasm_pack" yaml:"wasm_pack"`
	Flutter  string `mapstructure:"flutter" yaml:"flutter"`
}

type Proto struct {
	// Target selects the protoc output plugin, producing --<target>_out.
	Target string `mapstructure:"target" yaml:"target"`
}

type Config struct {
	Tools Tools `mapstructure:"tools" yaml:"tools"`
	Proto Proto `mapstructure:"proto" yaml:"proto"`
}

const configName = "holbuild"
const configType = "yaml"

// Default is the configuration used when no config file is found.
func Default() Config {
	return Config{
		Tools: Tools{
			Protoc:   "protoc",
			WasmPack: "wasm-pack",
			Flutter:  "flutter",
		},
		Proto: Proto{Target: "dart"},
	}
}

// Load reads the configuration. An explicit `file` must exist; otherwise
// holbuild.yaml is only looked up in the project root, and the defaults are
// used if it is not there.
func Load(file, projectRoot string) (Config, error) {
	v := viper.New()
	v.SetConfigType(configType)

	defaults := Default()
	v.SetDefault("tools.protoc", defaults.Tools.Protoc)
	v.SetDefault("tools.wasm_pack", defaults.Tools.WasmPack)
	v.SetDefault("tools.flutter", defaults.Tools.Flutter)
	v.SetDefault("proto.target", defaults.Proto.Target)

	if file != "" {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return Config{}, fmt.Errorf("failed to expand config path '%s': %w", file, err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(projectRoot)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read configuration: %w", err)
		}
		log.Debug("No %s.%s found. Using default configuration.\n", configName, configType)
	} else {
		log.Debug("Loaded configuration from '%s'.\n", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	log.Debug("Running with configuration: %+v\n", config)
	return config, nil
}

func (c Config) validate() error {
	required := map[string]string{
		"tools.protoc":    c.Tools.Protoc,
		"tools.wasm_pack": c.Tools.WasmPack,
		"tools.flutter":   c.Tools.Flutter,
		"proto.target":    c.Proto.Target,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("configuration key '%s' must not be empty", key)
		}
	}
	return nil
}

// YAML renders the configuration in config file syntax.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
