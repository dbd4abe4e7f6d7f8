package nccase

// Ptr is a helper to get a pointer to a value, useful for building the
// *string inputs the conversion functions accept.
// Example: Ptr("hello")
func Ptr[T any](v T) *T {
	return &v
}
