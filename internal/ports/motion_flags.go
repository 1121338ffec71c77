package ports

// MotionFlagsLoader loads the per-class motion-check flags.
type MotionFlagsLoader interface {
	LoadFlags(path string) (map[string]bool, error)
}
