/*
Package parser loads project specifications from YAML.

Parsing is a thin transformation layer: YAML is decoded into permissive
intermediate structures and then built into the spec model. Scalars are
coerced where the format allows shorthand (a source entry may be a bare
string or a map, a scheme build entry may map a target to "all" or to a list
of build types), and an include list is merged before building so a spec can
be split across files.

The parser reports only syntax and shape problems as errors. Dangling name
references and missing files are not parse errors; they are the validator's
job (see pkg/spec/validator), and the parser deliberately leaves every
cross-entity reference as an unresolved name so the validator can report all
of them together.
*/
package parser
