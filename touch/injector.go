package touch

//go:generate mockgen -source $GOFILE -destination injector_mocks.go -package $GOPACKAGE

// Injector delivers synthetic input to the host.
type Injector interface {
	// OpenContact puts touch contact id down at x, y.
	OpenContact(id, x, y int) error
	// CloseContact lifts touch contact id, last seen at x, y.
	CloseContact(id, x, y int) error
	// Click performs a single pointer click at x, y and puts the pointer
	// back where it was.
	Click(x, y int) error
	// SupportsMultiTouch is false when only the single point pointer
	// fallback is available.
	SupportsMultiTouch() bool
}
