// Package errors provides the classified error type used across the handbook tool.
//
// A ClassifiedError carries a category (config, validation, filesystem, ...),
// a severity and structured context. The CLI adapter turns categories into
// process exit codes.
//
//	err := errors.NewError(errors.CategoryFileSystem, "write rendered config").
//		WithContext("path", out).
//		WithCause(ioErr).
//		Build()
package errors
