package model

import "errors"

// Error kinds surfaced to the user. Wrap with fmt.Errorf("...: %w", Err...)
// and classify with errors.Is at the transport boundary.
var (
	// ErrInvalidInput means the submitted link, file, or text cannot be used.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetch means transcript or document retrieval failed.
	ErrFetch = errors.New("fetch failed")

	// ErrInference means the remote model call failed.
	ErrInference = errors.New("inference failed")

	// ErrParse means a model reply did not contain a usable embedded JSON object.
	ErrParse = errors.New("parse failed")
)
