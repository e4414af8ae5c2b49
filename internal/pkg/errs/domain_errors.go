package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Listing errors
	ErrListingNotFound  = errors.New("listing not found")
	ErrListingNotOwned  = errors.New("listing not owned by user")
	ErrListingDeleted   = errors.New("listing deleted")
	ErrCategoryNotFound = errors.New("category not found")

	// Promotion errors
	ErrUnknownPromotionType = errors.New("unknown promotion type")
	ErrInvalidDuration      = errors.New("invalid promotion duration")
	ErrUnknownPricePlan     = errors.New("unknown price plan")
	ErrCheckoutFailed       = errors.New("checkout session creation failed")

	// Payment log errors
	ErrDuplicatePaymentEvent = errors.New("payment event already processed")

	// Validation errors
	ErrDomainValidation       = errors.New("domain validation error")
	ErrDomainValidationFailed = errors.New("domain validation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
