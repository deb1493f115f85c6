package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgCropNotFound   = "crop not found"
	ErrMsgInvalidCrop    = "invalid crop definition"
	ErrMsgDuplicateCrop  = "duplicate crop name"
	ErrMsgInvalidCatalog = "invalid crop catalog"

	// Preference errors
	ErrMsgInvalidLandSize = "invalid land size"
	ErrMsgInvalidProfile  = "invalid profile"
	ErrMsgNegativeValue   = "value must not be negative"

	// Store errors
	ErrMsgStoreUnavailable = "preference store unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrCropNotFound   = errors.New(ErrMsgCropNotFound)
	ErrInvalidCrop    = errors.New(ErrMsgInvalidCrop)
	ErrDuplicateCrop  = errors.New(ErrMsgDuplicateCrop)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Preference errors
	ErrInvalidLandSize = errors.New(ErrMsgInvalidLandSize)
	ErrInvalidProfile  = errors.New(ErrMsgInvalidProfile)
	ErrNegativeValue   = errors.New(ErrMsgNegativeValue)

	// Store errors
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
