package constants

// Database table names
const (
	TableCustomerModules    = "customer_modules"
	TableActivationRequests = "activation_requests"
	TableAuditLogs          = "module_audit_logs"
	TableDiscountCodes      = "discount_codes"
)
