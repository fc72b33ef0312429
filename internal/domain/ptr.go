package domain

// Float64Ptr returns a pointer to v. Convenience for building leaf records.
func Float64Ptr(v float64) *float64 {
	return &v
}
