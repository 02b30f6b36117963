package entitlement

import "errors"

var (
	// ErrModuleNotFound is returned when the target module is not in the catalog
	ErrModuleNotFound = errors.New("module not found")

	// ErrCustomerModuleNotFound is returned when no record exists for a (customer, module) pair
	ErrCustomerModuleNotFound = errors.New("customer module not found")

	// ErrCoreModuleProtected is returned when attempting to disable a core module
	ErrCoreModuleProtected = errors.New("core modules cannot be disabled")

	// ErrCustomerIDRequired is returned when the customer id is missing
	ErrCustomerIDRequired = errors.New("customer ID is required")

	// ErrModuleIDRequired is returned when the module id is missing
	ErrModuleIDRequired = errors.New("module ID is required")
)
