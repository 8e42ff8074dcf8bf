/*
Package cache records validation runs in a local SQLite database so that
re-validating a byte-identical spec can be skipped.

The cache key is the SHA-256 of the raw bytes of the spec file the user
pointed at. A hit means the same bytes validated before and records what the
outcome was. A hit is advisory only: included files and file-system
existence can drift without those bytes changing, so callers expose a way
to force a full run (the CLI's --no-cache flag).
*/
package cache
