package spec

// Project is the root of a parsed project specification.
// It owns every entity the validator reasons about.
type Project struct {
	// BasePath is the directory all relative file references resolve
	// against. Usually the directory containing the spec file.
	BasePath string

	Name string

	// Configs is the ordered list of declared build configurations.
	Configs []Config

	// Settings are the project-level build settings.
	Settings Settings

	// SettingGroups maps group name to a reusable settings bundle.
	// Groups may include other groups by name; the graph is not
	// guaranteed acyclic.
	SettingGroups map[string]Settings

	// Targets is the ordered list of buildable units.
	Targets []Target

	// Schemes is the ordered list of top-level schemes.
	Schemes []Scheme

	// FileGroups are extra paths (relative to BasePath) that should be
	// grouped into the generated project.
	FileGroups []string

	// ConfigFiles maps configuration name to an xcconfig path relative
	// to BasePath.
	ConfigFiles map[string]string

	// SpecFile is the path the project was loaded from, when known.
	SpecFile string
}

// GetTarget returns the target with the given name, or nil if not declared.
// Lookup is by exact name.
func (p *Project) GetTarget(name string) *Target {
	for i := range p.Targets {
		if p.Targets[i].Name == name {
			return &p.Targets[i]
		}
	}
	return nil
}

// HasTarget returns true if a target with the given name is declared.
func (p *Project) HasTarget(name string) bool {
	return p.GetTarget(name) != nil
}

// GetConfig returns the configuration with the given name, or nil if not
// declared. Lookup is by exact name.
func (p *Project) GetConfig(name string) *Config {
	for i := range p.Configs {
		if p.Configs[i].Name == name {
			return &p.Configs[i]
		}
	}
	return nil
}

// HasConfig returns true if a configuration with the given name is declared.
func (p *Project) HasConfig(name string) bool {
	return p.GetConfig(name) != nil
}

// ConfigNames returns the declared configuration names in order.
func (p *Project) ConfigNames() []string {
	names := make([]string, 0, len(p.Configs))
	for _, c := range p.Configs {
		names = append(names, c.Name)
	}
	return names
}

// TargetNames returns the declared target names in order.
func (p *Project) TargetNames() []string {
	names := make([]string, 0, len(p.Targets))
	for _, t := range p.Targets {
		names = append(names, t.Name)
	}
	return names
}

// GroupNames returns the declared settings-group names.
func (p *Project) GroupNames() []string {
	names := make([]string, 0, len(p.SettingGroups))
	for name := range p.SettingGroups {
		names = append(names, name)
	}
	return names
}
