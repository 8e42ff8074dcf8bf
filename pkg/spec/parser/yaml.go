package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlProject is the intermediate structure a spec file decodes into before
// transformation into the spec model. Field types stay loose where the
// format allows shorthand.
type yamlProject struct {
	Name          string                 `yaml:"name"`
	Include       []string               `yaml:"include"`
	Configs       map[string]string      `yaml:"configs"`
	Settings      map[string]interface{} `yaml:"settings"`
	SettingGroups map[string]interface{} `yaml:"settingGroups"`
	Targets       map[string]yamlTarget  `yaml:"targets"`
	Schemes       map[string]yamlScheme  `yaml:"schemes"`
	FileGroups    []string               `yaml:"fileGroups"`
	ConfigFiles   map[string]string      `yaml:"configFiles"`
}

// yamlTarget is an intermediate target. Sources and dependencies keep
// interface{} elements so both scalar and map forms decode.
type yamlTarget struct {
	Type             string                   `yaml:"type"`
	Platform         string                   `yaml:"platform"`
	Sources          []interface{}            `yaml:"sources"`
	Dependencies     []map[string]interface{} `yaml:"dependencies"`
	ConfigFiles      map[string]string        `yaml:"configFiles"`
	Settings         map[string]interface{}   `yaml:"settings"`
	PreBuildScripts  []yamlBuildScript        `yaml:"prebuildScripts"`
	PostBuildScripts []yamlBuildScript        `yaml:"postbuildScripts"`
	Scheme           *yamlTargetScheme        `yaml:"scheme"`
}

type yamlBuildScript struct {
	Name                  string   `yaml:"name"`
	Path                  string   `yaml:"path"`
	Script                string   `yaml:"script"`
	Shell                 string   `yaml:"shell"`
	InputFiles            []string `yaml:"inputFiles"`
	OutputFiles           []string `yaml:"outputFiles"`
	RunOnlyWhenInstalling bool     `yaml:"runOnlyWhenInstalling"`
}

type yamlTargetScheme struct {
	ConfigVariants       []string          `yaml:"configVariants"`
	TestTargets          []string          `yaml:"testTargets"`
	GatherCoverageData   bool              `yaml:"gatherCoverageData"`
	CommandLineArguments map[string]bool   `yaml:"commandLineArguments"`
	EnvironmentVariables map[string]string `yaml:"environmentVariables"`
}

type yamlScheme struct {
	Build   yamlBuildAction `yaml:"build"`
	Run     *yamlExecAction `yaml:"run"`
	Test    *yamlExecAction `yaml:"test"`
	Profile *yamlExecAction `yaml:"profile"`
	Analyze *yamlExecAction `yaml:"analyze"`
	Archive *yamlExecAction `yaml:"archive"`
}

type yamlBuildAction struct {
	// Targets maps target name to either the string "all" or a list of
	// build types.
	Targets map[string]interface{} `yaml:"targets"`
}

type yamlExecAction struct {
	Config               string            `yaml:"config"`
	CommandLineArguments map[string]bool   `yaml:"commandLineArguments"`
	EnvironmentVariables map[string]string `yaml:"environmentVariables"`
}

// parseYAMLFile reads and decodes a spec file into the intermediate
// structure.
func parseYAMLFile(path string) (*yamlProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	return parseYAMLBytes(data)
}

// parseYAMLBytes decodes spec YAML into the intermediate structure.
func parseYAMLBytes(data []byte) (*yamlProject, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	var project yamlProject
	if err := node.Decode(&project); err != nil {
		return nil, fmt.Errorf("invalid spec structure: %w", err)
	}
	return &project, nil
}
