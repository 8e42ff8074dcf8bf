/*
Package spec defines the in-memory model of a declarative project
specification: build configurations, targets, schemes, settings groups, and
the file-system references between them.

The model is built once by the parser (see pkg/spec/parser) and is read-only
thereafter. All cross-entity references are plain names resolved by lookup at
validation time; nothing in the model enforces referential integrity. That is
deliberate: the validator (see pkg/spec/validator) exists to detect unresolved
names and missing files and report them all together, so references must stay
unresolved strings rather than become pointers at parse time.

Name resolution helpers on Project use exact-name matching. The looser
matching policies (case-insensitive substring for build-setting config keys,
case-sensitive substring for scheme config variants) live in the validator,
which is the only place they apply.
*/
package spec
