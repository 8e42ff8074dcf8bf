package parser

import (
	"fmt"
	"sort"

	"github.com/arunabhdas/xcodegen/pkg/spec"
)

// buildProject transforms the intermediate YAML structure into the spec
// model. Targets and schemes are emitted in name order so repeated loads of
// the same file produce identical projects.
func buildProject(y *yamlProject, basePath, specFile string) (*spec.Project, error) {
	project := &spec.Project{
		BasePath:    basePath,
		Name:        y.Name,
		FileGroups:  y.FileGroups,
		ConfigFiles: y.ConfigFiles,
		SpecFile:    specFile,
	}

	configNames := make([]string, 0, len(y.Configs))
	for name := range y.Configs {
		configNames = append(configNames, name)
	}
	sort.Strings(configNames)
	for _, name := range configNames {
		project.Configs = append(project.Configs, spec.Config{
			Name: name,
			Type: buildConfigType(y.Configs[name]),
		})
	}

	settings, err := buildSettings(y.Settings)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	project.Settings = settings

	project.SettingGroups = make(map[string]spec.Settings, len(y.SettingGroups))
	for name, raw := range y.SettingGroups {
		group, err := buildSettingsValue(raw)
		if err != nil {
			return nil, fmt.Errorf("settingGroups.%s: %w", name, err)
		}
		project.SettingGroups[name] = group
	}

	targetNames := make([]string, 0, len(y.Targets))
	for name := range y.Targets {
		targetNames = append(targetNames, name)
	}
	sort.Strings(targetNames)
	for _, name := range targetNames {
		target, err := buildTarget(name, y.Targets[name])
		if err != nil {
			return nil, fmt.Errorf("targets.%s: %w", name, err)
		}
		project.Targets = append(project.Targets, target)
	}

	schemeNames := make([]string, 0, len(y.Schemes))
	for name := range y.Schemes {
		schemeNames = append(schemeNames, name)
	}
	sort.Strings(schemeNames)
	for _, name := range schemeNames {
		scheme, err := buildScheme(name, y.Schemes[name])
		if err != nil {
			return nil, fmt.Errorf("schemes.%s: %w", name, err)
		}
		project.Schemes = append(project.Schemes, scheme)
	}

	return project, nil
}

// buildConfigType maps a declared config type string onto the model.
// Unknown strings become ConfigTypeNone rather than an error; an untyped
// config is legal, it just never satisfies scheme variant requirements.
func buildConfigType(raw string) spec.ConfigType {
	switch raw {
	case "debug":
		return spec.ConfigTypeDebug
	case "release":
		return spec.ConfigTypeRelease
	default:
		return spec.ConfigTypeNone
	}
}

// buildSettingsValue coerces a raw YAML value into Settings. A mapping
// either uses the structured form (groups/configs/base keys) or is treated
// wholesale as build settings.
func buildSettingsValue(raw interface{}) (spec.Settings, error) {
	if raw == nil {
		return spec.Settings{}, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return spec.Settings{}, fmt.Errorf("expected a mapping, got %T", raw)
	}
	return buildSettings(m)
}

func buildSettings(m map[string]interface{}) (spec.Settings, error) {
	if m == nil {
		return spec.Settings{}, nil
	}

	_, hasGroups := m["groups"]
	_, hasConfigs := m["configs"]
	_, hasBase := m["base"]
	if !hasGroups && !hasConfigs && !hasBase {
		// Flat form: the whole mapping is build settings.
		return spec.Settings{BuildSettings: m}, nil
	}

	var settings spec.Settings

	if hasGroups {
		groups, err := stringSlice(m["groups"])
		if err != nil {
			return settings, fmt.Errorf("groups: %w", err)
		}
		settings.Groups = groups
	}

	if hasBase {
		base, ok := m["base"].(map[string]interface{})
		if !ok {
			return settings, fmt.Errorf("base: expected a mapping, got %T", m["base"])
		}
		settings.BuildSettings = base
	}

	if hasConfigs {
		configs, ok := m["configs"].(map[string]interface{})
		if !ok {
			return settings, fmt.Errorf("configs: expected a mapping, got %T", m["configs"])
		}
		settings.ConfigSettings = make(map[string]map[string]interface{}, len(configs))
		for name, raw := range configs {
			values, ok := raw.(map[string]interface{})
			if !ok {
				return settings, fmt.Errorf("configs.%s: expected a mapping, got %T", name, raw)
			}
			settings.ConfigSettings[name] = values
		}
	}

	return settings, nil
}

func buildTarget(name string, y yamlTarget) (spec.Target, error) {
	target := spec.Target{
		Name:        name,
		Type:        y.Type,
		Platform:    y.Platform,
		ConfigFiles: y.ConfigFiles,
	}

	for i, raw := range y.Sources {
		source, err := buildSource(raw)
		if err != nil {
			return target, fmt.Errorf("sources[%d]: %w", i, err)
		}
		target.Sources = append(target.Sources, source)
	}

	for i, raw := range y.Dependencies {
		dependency, err := buildDependency(raw)
		if err != nil {
			return target, fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		target.Dependencies = append(target.Dependencies, dependency)
	}

	settings, err := buildSettings(y.Settings)
	if err != nil {
		return target, fmt.Errorf("settings: %w", err)
	}
	target.Settings = settings

	for _, script := range y.PreBuildScripts {
		target.PreBuildScripts = append(target.PreBuildScripts, buildScript(script))
	}
	for _, script := range y.PostBuildScripts {
		target.PostBuildScripts = append(target.PostBuildScripts, buildScript(script))
	}

	if y.Scheme != nil {
		target.Scheme = &spec.TargetScheme{
			ConfigVariants:       y.Scheme.ConfigVariants,
			TestTargets:          y.Scheme.TestTargets,
			GatherCoverageData:   y.Scheme.GatherCoverageData,
			CommandLineArguments: y.Scheme.CommandLineArguments,
			EnvironmentVariables: y.Scheme.EnvironmentVariables,
		}
	}

	return target, nil
}

// buildSource accepts the scalar shorthand ("Sources/App") and the map form
// ({path: Sources/App, name: App}).
func buildSource(raw interface{}) (spec.Source, error) {
	switch value := raw.(type) {
	case string:
		return spec.Source{Path: value}, nil
	case map[string]interface{}:
		path, _ := value["path"].(string)
		if path == "" {
			return spec.Source{}, fmt.Errorf("source mapping is missing a path")
		}
		name, _ := value["name"].(string)
		return spec.Source{Path: path, Name: name}, nil
	default:
		return spec.Source{}, fmt.Errorf("expected a string or mapping, got %T", raw)
	}
}

// buildDependency reads the one-of-target/framework/carthage/sdk mapping
// form used by the spec format.
func buildDependency(raw map[string]interface{}) (spec.Dependency, error) {
	var dependency spec.Dependency

	kinds := []spec.DependencyType{
		spec.DependencyTypeTarget,
		spec.DependencyTypeFramework,
		spec.DependencyTypeCarthage,
		spec.DependencyTypeSDK,
	}
	for _, kind := range kinds {
		ref, ok := raw[string(kind)]
		if !ok {
			continue
		}
		name, ok := ref.(string)
		if !ok {
			return dependency, fmt.Errorf("%s: expected a string, got %T", kind, ref)
		}
		dependency.Type = kind
		dependency.Reference = name
	}
	if dependency.Reference == "" {
		return dependency, fmt.Errorf("dependency must name one of target, framework, carthage, sdk")
	}

	if embed, ok := raw["embed"].(bool); ok {
		dependency.Embed = &embed
	}
	if link, ok := raw["link"].(bool); ok {
		dependency.Link = &link
	}

	return dependency, nil
}

func buildScript(y yamlBuildScript) spec.BuildScript {
	return spec.BuildScript{
		Name:                  y.Name,
		Path:                  y.Path,
		Script:                y.Script,
		Shell:                 y.Shell,
		InputFiles:            y.InputFiles,
		OutputFiles:           y.OutputFiles,
		RunOnlyWhenInstalling: y.RunOnlyWhenInstalling,
	}
}

func buildScheme(name string, y yamlScheme) (spec.Scheme, error) {
	scheme := spec.Scheme{Name: name}

	buildTargetNames := make([]string, 0, len(y.Build.Targets))
	for target := range y.Build.Targets {
		buildTargetNames = append(buildTargetNames, target)
	}
	sort.Strings(buildTargetNames)
	for _, target := range buildTargetNames {
		buildTypes, err := buildBuildTypes(y.Build.Targets[target])
		if err != nil {
			return scheme, fmt.Errorf("build.targets.%s: %w", target, err)
		}
		scheme.Build.Targets = append(scheme.Build.Targets, spec.BuildTarget{
			Target:     target,
			BuildTypes: buildTypes,
		})
	}

	scheme.Run = buildExecAction(y.Run)
	scheme.Test = buildExecAction(y.Test)
	scheme.Profile = buildExecAction(y.Profile)
	scheme.Analyze = buildExecAction(y.Analyze)
	scheme.Archive = buildExecAction(y.Archive)

	return scheme, nil
}

// buildBuildTypes accepts "all" or a list of build type names.
func buildBuildTypes(raw interface{}) ([]spec.BuildType, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if value != "all" {
			return nil, fmt.Errorf("expected %q or a list of build types, got %q", "all", value)
		}
		return nil, nil
	case []interface{}:
		types := make([]spec.BuildType, 0, len(value))
		for _, item := range value {
			name, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected a build type string, got %T", item)
			}
			types = append(types, spec.BuildType(name))
		}
		return types, nil
	default:
		return nil, fmt.Errorf("expected %q or a list of build types, got %T", "all", raw)
	}
}

func buildExecAction(y *yamlExecAction) *spec.ExecutionAction {
	if y == nil {
		return nil
	}
	return &spec.ExecutionAction{
		Config:               y.Config,
		CommandLineArguments: y.CommandLineArguments,
		EnvironmentVariables: y.EnvironmentVariables,
	}
}

// stringSlice coerces a YAML list of scalars into []string.
func stringSlice(raw interface{}) ([]string, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		result := make([]string, 0, len(value))
		for _, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected a string, got %T", item)
			}
			result = append(result, s)
		}
		return result, nil
	case string:
		return []string{value}, nil
	default:
		return nil, fmt.Errorf("expected a list of strings, got %T", raw)
	}
}
