package usecase

// Progress reports one processed file during a long-running operation.
// Callbacks may be invoked from multiple goroutines.
type Progress struct {
	Done  int
	Total int
	Path  string
	Err   error
}
