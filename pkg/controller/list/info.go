package list

// CheckerInfo describes one checker of the effective battery. It is used for
// template rendering.
type CheckerInfo struct {
	Name string // Executable name of the checker
	Args string // Fixed arguments, space joined
	Path string // Install location, empty when the checker isn't installed
}
