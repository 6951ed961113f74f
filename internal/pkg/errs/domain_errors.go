package errs

// Sentinel errors shared by the command and query use cases
var (
	// Lookup errors
	ErrCustomerNotFound    = New("customer not found")
	ErrEquipmentNotFound   = New("equipment not found")
	ErrReservationNotFound = New("reservation not found")

	// Store constraint errors
	ErrDuplicateCustomer = New("customer with this email already exists")
	ErrInvalidReference  = New("referenced customer or equipment does not exist")
	ErrStillReferenced   = New("record is still referenced by reservations")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
