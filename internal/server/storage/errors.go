package storage

import "errors"

// Common storage errors
var (
	// ErrProgressNotFound indicates that progress document was not found for the user
	ErrProgressNotFound = errors.New("progress not found")

	// ErrProgressMismatch indicates that update targets a document of another question
	ErrProgressMismatch = errors.New("progress document belongs to another question")

	// ErrQuestionNotFound indicates that question was not found in storage
	ErrQuestionNotFound = errors.New("question not found")
)
