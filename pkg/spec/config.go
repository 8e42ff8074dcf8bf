package spec

// ConfigType classifies a build configuration.
type ConfigType string

const (
	ConfigTypeDebug   ConfigType = "debug"
	ConfigTypeRelease ConfigType = "release"
	// ConfigTypeNone marks a configuration with no declared type.
	// Untyped configurations never satisfy a scheme's debug/release
	// variant requirements.
	ConfigTypeNone ConfigType = "none"
)

// Config is a named build configuration (e.g. "Debug", "Release-Beta").
type Config struct {
	Name string
	Type ConfigType
}

// Settings is a bundle of build settings. It may pull in named settings
// groups and override values per configuration.
type Settings struct {
	// Groups lists settings-group names to include, in order.
	Groups []string

	// ConfigSettings maps a configuration name key to overrides applied
	// when that configuration is active. Keys match declared
	// configuration names by case-insensitive substring, so a key
	// "release" covers both "Release" and "Release-Beta".
	ConfigSettings map[string]map[string]interface{}

	// BuildSettings are settings applied to every configuration.
	BuildSettings map[string]interface{}
}

// IsEmpty returns true if the settings carry no groups and no values.
func (s Settings) IsEmpty() bool {
	return len(s.Groups) == 0 && len(s.ConfigSettings) == 0 && len(s.BuildSettings) == 0
}
