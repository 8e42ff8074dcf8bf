/*
Package validator checks a parsed project specification for internal
consistency and external resolvability.

The specification is a graph whose edges are plain names: targets depend on
targets by name, settings include settings groups by name, schemes reference
configurations by name, and many entities reference file-system paths.
Nothing enforces these references at construction time, so a single spec can
carry many independent defects. The validator walks every referencing
relationship in one pass and accumulates all defects it finds; no check
short-circuits another, and the caller gets the complete picture at once.

Usage:

	v := validator.NewValidator()
	if err := v.Validate(project); err != nil {
	    list := err.(*errors.ValidationErrorList)
	    for _, d := range list.Defects {
	        fmt.Println(d.Error())
	    }
	}

Validate returns nil when the specification is fully resolvable, otherwise a
*errors.ValidationErrorList carrying every defect found.

Name matching follows the specification's deliberate policies: exact match
for target and configuration lookup, case-insensitive substring match for
build-setting config keys (a configuration "Release-iOS" satisfies the key
"release"), and case-sensitive substring match for scheme config variants
filtered by configuration type. These are part of the contract, not
accidents; do not tighten them.

File-system checks stat each referenced path exactly once per reference,
never caching across references. Any stat failure, including a permission
error, reads as "does not exist". An existing directory satisfies a check
the same as an existing file.
*/
package validator
