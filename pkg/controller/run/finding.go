package run

// Finding is a single normalized diagnostic line and its provenance. Text is
// what the diff operates on; File and Checker ride along for reporting. File
// is relative to the repository root.
type Finding struct {
	File    string
	Checker string
	Text    string
}
