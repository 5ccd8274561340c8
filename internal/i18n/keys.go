// Package i18n provides internationalization support for the pricing service.
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
	// ErrKeyInvalidCredentials indicates a wrong username or password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyCatalogNotReady indicates the catalog lacks data for the selection.
	ErrKeyCatalogNotReady = "error.catalog_not_ready"
	// ErrKeyInvalidCatalog indicates a catalog replacement failed validation.
	ErrKeyInvalidCatalog = "error.invalid_catalog"
	// ErrKeyEmptyQueue indicates a submission with no queued items.
	ErrKeyEmptyQueue = "error.empty_queue"
	// ErrKeyImportFormat indicates an import payload that is not a batch array.
	ErrKeyImportFormat = "error.import_format"
	// ErrKeyItemNotFound indicates a queue item id that does not exist.
	ErrKeyItemNotFound = "error.item_not_found"
)

// Success message translation keys.
const (
	// SuccessKeyBatchSubmitted indicates a successful ledger submission.
	SuccessKeyBatchSubmitted = "success.batch_submitted"
	// SuccessKeyImported indicates a successful merge-import.
	SuccessKeyImported = "success.imported"
	// SuccessKeyLoggedOut indicates a successful logout.
	SuccessKeyLoggedOut = "success.logged_out"
)
