/*
Package watch re-runs a callback when spec files change on disk.

It backs the validate --watch mode: the watcher observes the directory of
the spec file, filters events down to YAML files, and debounces bursts
(editors typically emit several events per save) so validation runs once per
quiet period.
*/
package watch
