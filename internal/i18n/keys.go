// Package i18n provides internationalization support for the truckload service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key or token is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyInvalidToken indicates an invalid or expired bearer token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyIdempotencyMismatch indicates an idempotency key reused with another body.
	ErrKeyIdempotencyMismatch = "error.idempotency_mismatch"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Load planning error keys.
const (
	ErrKeyInvalidTruck         = "error.invalid_truck_dimensions"
	ErrKeyNegativeCount        = "error.negative_count"
	ErrKeyInvalidBoxDimensions = "error.invalid_box_dimensions"
	ErrKeyUnknownBoxType       = "error.unknown_box_type"
	ErrKeyConflictingBoxType   = "error.conflicting_box_type"
	ErrKeyMissingBoxTypeID     = "error.missing_box_type_id"
	ErrKeyPlanNotFound         = "error.plan_not_found"
	ErrKeyHistoryUnavailable   = "error.history_unavailable"
	ErrKeyAuditUnavailable     = "error.audit_unavailable"
	ErrKeyOptimizationFailed   = "error.optimization_failed"
)

// Success message translation keys.
const (
	// SuccessKeyPlanComputed indicates a load plan was computed.
	SuccessKeyPlanComputed = "success.plan_computed"
)
