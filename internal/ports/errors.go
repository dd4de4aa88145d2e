package ports

import "errors"

// Standard application-level errors.
// Adapters should wrap underlying infrastructure errors with these standard errors.
var (
	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrNotFound           = errors.New("resource not found")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Analysis Errors
	ErrInsufficientData = errors.New("insufficient price data for analysis")
	ErrDataExhausted    = errors.New("price data exhausted by indicator warm-up")

	// Provider Specific Errors
	ErrProviderUnavailable = errors.New("data provider is unavailable")
	ErrConnectionFailed    = errors.New("failed to connect to the data provider")
	ErrRateLimited         = errors.New("API rate limit exceeded")

	// Database Specific Errors
	ErrDuplicateEntry = errors.New("database record already exists")
	ErrDBConnection   = errors.New("database connection error")
	ErrQueryFailed    = errors.New("database query failed")
	ErrUpdateFailed   = errors.New("database update failed")
)
