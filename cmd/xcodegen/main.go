// Xcodegen validates declarative project specifications.
//
// It loads a project spec from YAML and checks every reference in it:
// target dependencies, configuration names, settings groups, schemes, and
// file-system paths. All problems are reported together in one pass.
//
// Usage:
//
//	# Validate a spec
//	xcodegen validate --spec project.yml
//
//	# JSON output for CI
//	xcodegen validate --spec project.yml --format json
//
//	# Re-validate on every change
//	xcodegen validate --spec project.yml --watch
//
//	# Show version information
//	xcodegen version
package main

func main() {
	Execute()
}
