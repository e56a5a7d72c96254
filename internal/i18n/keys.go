package i18n

// Message keys for translatable API responses.
const (
	// Generic errors
	ErrKeyInvalidRequest = "error.invalid_request"
	ErrKeyNotFound       = "error.not_found"
	ErrKeyInternal       = "error.internal"
	ErrKeyRateLimited    = "error.rate_limited"
	ErrKeyTimeout        = "error.timeout"

	// Catalog
	ErrKeyCatalogCategoryNotFound = "error.catalog.category_not_found"
	ErrKeyCatalogProductNotFound  = "error.catalog.product_not_found"
	ErrKeyCatalogPriceOnRequest   = "error.catalog.price_on_request"
	ErrKeyCatalogInvalidOption    = "error.catalog.invalid_option"

	// Cart
	ErrKeyCartItemNotFound = "error.cart.item_not_found"

	// Checkout field validation
	ErrKeyCheckoutCartEmpty       = "error.checkout.cart_empty"
	ErrKeyCheckoutCustomerName    = "error.checkout.customer_name"
	ErrKeyCheckoutCustomerPhone   = "error.checkout.customer_phone"
	ErrKeyCheckoutCustomerAddress = "error.checkout.customer_address"
	ErrKeyCheckoutDeliveryType    = "error.checkout.delivery_type"
	ErrKeyCheckoutDeliveryFee     = "error.checkout.delivery_fee"

	// Checkout scheduling
	ErrKeyScheduleRequired      = "error.checkout.schedule_required"
	ErrKeyScheduleInvalid       = "error.checkout.schedule_invalid"
	ErrKeySchedulePast          = "error.checkout.schedule_past"
	ErrKeyScheduleLeadTime      = "error.checkout.schedule_lead_time"
	ErrKeyScheduleBusinessHours = "error.checkout.schedule_business_hours"
	ErrKeyScheduleSunday        = "error.checkout.schedule_sunday"
	ErrKeyScheduleSaturday      = "error.checkout.schedule_saturday"

	// Checkout availability
	ErrKeyCheckoutDisabled = "error.checkout.disabled"

	// Success messages
	MsgKeyOrderReady  = "message.order_ready"
	MsgKeyCartCleared = "message.cart_cleared"
)
