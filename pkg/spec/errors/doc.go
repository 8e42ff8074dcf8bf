/*
Package errors defines the defect taxonomy for project-spec validation.

A Defect is one detected inconsistency in a specification: a dangling name
reference or a missing file. Defects are kind-tagged structs, not strings,
so renderers and tests can match on kind and context fields independently of
message text:

	if d.Kind == errors.InvalidTargetDependency && d.Dependency == "MissingKit" {
	    ...
	}

ValidationErrorList accumulates defects across a whole validation pass.
It implements error; ToError returns nil when the list is empty, so callers
can treat a validation result as an ordinary error value:

	if err := validator.New(project).Validate(); err != nil {
	    list := err.(*errors.ValidationErrorList)
	    fmt.Print(list.Error())
	}
*/
package errors
