// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess       = "success"
	KeyError         = "error"
	KeyInternalError = "error.internal"
	KeyPersistence   = "error.persistence"
	KeyRateLimited   = "error.rate_limited"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthTooManyAttempts    = "auth.too_many_attempts"
	KeyAccessDenied           = "auth.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Orders
	KeyOrderCreated           = "order.created"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderLocked            = "order.locked"
	KeyOrderStatusUpdated     = "order.status_updated"
	KeyOrderInvalidTransition = "order.invalid_transition"

	// Clients, catalogs and products
	KeyClientNotFound  = "client.not_found"
	KeyCatalogNotFound = "catalog.not_found"
	KeyCatalogClosed   = "catalog.closed"
	KeyProductNotFound = "product.not_found"
	KeyFreightUpdated  = "product.freight_updated"
	KeyStockRecorded   = "product.stock_recorded"

	// Payments
	KeyPaymentRecorded     = "payment.recorded"
	KeyPaymentDuplicate    = "payment.duplicate"
	KeyPaymentUnparseable  = "payment.unparseable"
	KeyPaymentUnattributed = "payment.unattributed"

	// Backup
	KeyBackupImported  = "backup.imported"
	KeyBackupMalformed = "backup.malformed"
	KeyBackupArchived  = "backup.archived"

	// Users
	KeyUserNotFound = "user.not_found"
	KeyUserExists   = "user.exists"
)
