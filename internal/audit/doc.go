// Package audit cross-references painterResource image references in a
// source file against the image files present in a resources directory.
//
// It exposes CommandBuilder for wiring the audit Cobra command, Service for
// driving the audit programmatically, and Report for the Missing and Extra
// sets produced by a run. Filesystem access goes through afero so callers can
// substitute in-memory fixtures.
package audit
