package errs

// Error kinds surfaced by the usecase layer. Concrete errors are marked with
// one of these so the transport can map them without knowing every sentinel.
var (
	ErrNotFound            = New("not found")
	ErrValidation          = New("validation failed")
	ErrInactiveCart        = New("cart is not active")
	ErrInsufficientStock   = New("insufficient stock")
	ErrInsufficientBalance = New("insufficient wallet balance")
	ErrConflict            = New("conflict")
)

// Kind builds a sentinel that carries both its own identity and the kind mark.
func Kind(msg string, kind error) error {
	return Mark(New(msg), kind)
}

// KindOf reports which of the known kinds err carries, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrNotFound, ErrValidation, ErrInactiveCart, ErrInsufficientStock, ErrInsufficientBalance, ErrConflict} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
