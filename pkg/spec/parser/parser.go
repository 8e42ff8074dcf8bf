package parser

import (
	"fmt"
	"path/filepath"

	"github.com/arunabhdas/xcodegen/pkg/spec"
)

// Parser loads project specifications from YAML files.
type Parser struct {
	// visited tracks files on the current include chain so circular
	// includes fail instead of recursing forever.
	visited map[string]bool
	stack   []string
}

// NewParser creates a new spec parser.
func NewParser() *Parser {
	return &Parser{
		visited: make(map[string]bool),
		stack:   make([]string, 0),
	}
}

// Parse loads the spec file at path, merges its includes, and builds the
// project model. The project's base path is the directory of the spec file.
func (p *Parser) Parse(path string) (*spec.Project, error) {
	p.visited = make(map[string]bool)
	p.stack = make([]string, 0)

	merged, err := p.loadWithIncludes(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return buildProject(merged, filepath.Dir(absPath), absPath)
}

// ParseBytes builds a project from spec YAML already in memory. Includes
// are not followed; basePath anchors relative file references.
func (p *Parser) ParseBytes(data []byte, basePath string) (*spec.Project, error) {
	y, err := parseYAMLBytes(data)
	if err != nil {
		return nil, err
	}
	return buildProject(y, basePath, "")
}

// loadWithIncludes loads a spec file and merges every included file into
// it, depth first. The outer file wins on key conflicts, so includes act as
// defaults.
func (p *Parser) loadWithIncludes(path string) (*yamlProject, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	if p.visited[absPath] {
		return nil, fmt.Errorf("circular include detected: %v", append(p.stack, absPath))
	}
	p.visited[absPath] = true
	p.stack = append(p.stack, absPath)
	defer func() {
		delete(p.visited, absPath)
		p.stack = p.stack[:len(p.stack)-1]
	}()

	outer, err := parseYAMLFile(absPath)
	if err != nil {
		return nil, err
	}

	if len(outer.Include) == 0 {
		return outer, nil
	}

	merged := &yamlProject{}
	baseDir := filepath.Dir(absPath)
	for _, include := range outer.Include {
		includePath := include
		if !filepath.IsAbs(includePath) {
			includePath = filepath.Join(baseDir, includePath)
		}
		included, err := p.loadWithIncludes(includePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load include %q: %w", include, err)
		}
		mergeProject(merged, included)
	}
	mergeProject(merged, outer)
	merged.Include = nil

	return merged, nil
}

// mergeProject overlays src on top of dst. Maps merge per key with src
// winning; the name and list fields are replaced wholesale when src sets
// them.
func mergeProject(dst, src *yamlProject) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if len(src.FileGroups) > 0 {
		dst.FileGroups = append(dst.FileGroups, src.FileGroups...)
	}

	dst.Configs = mergeStringMap(dst.Configs, src.Configs)
	dst.ConfigFiles = mergeStringMap(dst.ConfigFiles, src.ConfigFiles)

	if src.Settings != nil {
		if dst.Settings == nil {
			dst.Settings = make(map[string]interface{}, len(src.Settings))
		}
		for k, v := range src.Settings {
			dst.Settings[k] = v
		}
	}
	if src.SettingGroups != nil {
		if dst.SettingGroups == nil {
			dst.SettingGroups = make(map[string]interface{}, len(src.SettingGroups))
		}
		for k, v := range src.SettingGroups {
			dst.SettingGroups[k] = v
		}
	}
	if src.Targets != nil {
		if dst.Targets == nil {
			dst.Targets = make(map[string]yamlTarget, len(src.Targets))
		}
		for k, v := range src.Targets {
			dst.Targets[k] = v
		}
	}
	if src.Schemes != nil {
		if dst.Schemes == nil {
			dst.Schemes = make(map[string]yamlScheme, len(src.Schemes))
		}
		for k, v := range src.Schemes {
			dst.Schemes[k] = v
		}
	}
}

func mergeStringMap(dst, src map[string]string) map[string]string {
	if src == nil {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
