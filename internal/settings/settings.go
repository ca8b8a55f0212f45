// Package settings loads the options of the karamapper tool itself:
// which profile and device receive the compiled rules, where the output
// goes, and how logging behaves. Sources in increasing precedence are
// built-in defaults, the settings file, KARAMAPPER_* environment variables
// and command line flags bound by the caller.
package settings

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/Pascal736/karamapper/internal/compiler"
	"github.com/Pascal736/karamapper/internal/karabiner"
)

// EnvPrefix prefixes every environment variable read by settings.
const EnvPrefix = "KARAMAPPER"

// Keys addressable through viper, flags and the environment.
const (
	KeyProfileName      = "profile.name"
	KeyProfileSelected  = "profile.selected"
	KeyDeviceVendorID   = "device.vendor_id"
	KeyDeviceProductID  = "device.product_id"
	KeyDeviceIsKeyboard = "device.is_keyboard"
	KeyOutputMethod     = "output.method"
	KeyOutputTarget     = "output.target"
	KeyLogJSON          = "log.json"
	KeyLogLevel         = "log.level"
)

// Settings is the resolved tool configuration.
type Settings struct {
	Profile ProfileSettings `mapstructure:"profile"`
	Device  DeviceSettings  `mapstructure:"device"`
	Output  OutputSettings  `mapstructure:"output"`
	Log     LogSettings     `mapstructure:"log"`
}

// ProfileSettings names the generated Karabiner profile.
type ProfileSettings struct {
	Name     string `mapstructure:"name"`
	Selected bool   `mapstructure:"selected"`
}

// DeviceSettings identifies the device receiving simple modifications.
type DeviceSettings struct {
	VendorID   int  `mapstructure:"vendor_id"`
	ProductID  int  `mapstructure:"product_id"`
	IsKeyboard bool `mapstructure:"is_keyboard"`
}

// OutputSettings selects how the compiled document is written.
type OutputSettings struct {
	Method string `mapstructure:"method"`
	Target string `mapstructure:"target"`
}

// LogSettings configures the global logger.
type LogSettings struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// CompileOptions converts the profile and device settings for the compiler.
func (s *Settings) CompileOptions() compiler.Options {
	return compiler.Options{
		ProfileName: s.Profile.Name,
		Selected:    s.Profile.Selected,
		Device: karabiner.DeviceIdentifiers{
			IsKeyboard: s.Device.IsKeyboard,
			ProductID:  s.Device.ProductID,
			VendorID:   s.Device.VendorID,
		},
	}
}

// DefaultPath returns ~/.config/karamapper/settings.toml, or "" when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "karamapper", "settings.toml")
}

// DefaultTarget returns the path Karabiner-Elements reads its configuration from.
func DefaultTarget() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "karabiner", "karabiner.json")
	}
	return filepath.Join(home, ".config", "karabiner", "karabiner.json")
}

// SetDefaults configures default values for all settings.
func SetDefaults(v *viper.Viper) {
	defaults := compiler.DefaultOptions()

	v.SetDefault(KeyProfileName, defaults.ProfileName)
	v.SetDefault(KeyProfileSelected, defaults.Selected)

	v.SetDefault(KeyDeviceVendorID, defaults.Device.VendorID)
	v.SetDefault(KeyDeviceProductID, defaults.Device.ProductID)
	v.SetDefault(KeyDeviceIsKeyboard, defaults.Device.IsKeyboard)

	v.SetDefault(KeyOutputMethod, "stdout")
	v.SetDefault(KeyOutputTarget, DefaultTarget())

	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogLevel, "warn")
}

// New returns a viper instance with defaults, environment binding and the
// settings file at path merged in. An empty path reads DefaultPath if it
// exists; an explicit path must exist.
func New(path string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return v, nil
		}
		return nil, errors.Wrapf(err, "reading settings file %s", path)
	}

	return v, nil
}

// Unmarshal decodes the merged sources held by v.
func Unmarshal(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, "decoding settings")
	}
	return &s, nil
}

// Load is New followed by Unmarshal.
func Load(path string) (*Settings, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(v)
}
