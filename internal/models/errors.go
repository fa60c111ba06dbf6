// ABOUTME: Error taxonomy shared by every pipeline stage
// ABOUTME: Stages wrap these sentinels so callers can test with errors.Is
package models

import "errors"

var (
	// ErrInputNotFound means the source file is absent
	ErrInputNotFound = errors.New("input not found")
	// ErrSchemaValidation means decoded JSON does not match the expected record shape
	ErrSchemaValidation = errors.New("schema validation failed")
	// ErrExternalService means the analysis service failed or returned unusable content
	ErrExternalService = errors.New("external analysis service failed")
	// ErrWrite means persistence failed
	ErrWrite = errors.New("write failed")
	// ErrEmptyResult means a stage produced nothing, so the run halts without output
	ErrEmptyResult = errors.New("empty result")
	// ErrMissingCredential means the analysis service cannot be configured
	ErrMissingCredential = errors.New("missing credential")
)
