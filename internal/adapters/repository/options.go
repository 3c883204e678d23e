package repository

// StoreOption applies a configuration option to the MemStore.
type StoreOption func(*MemStore)

// WithCapacity bounds the number of retained assessments.
func WithCapacity(capacity int) StoreOption {
	return func(s *MemStore) {
		if capacity > 0 {
			s.capacity = capacity
		}
	}
}
