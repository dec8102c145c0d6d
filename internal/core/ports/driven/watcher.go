package driven

// ChangeWatcher reports modifications to the reference data directory
// so the engine can rebuild its indices.
type ChangeWatcher interface {
	// Events yields the path of each changed reference file.
	Events() <-chan string

	// Close stops watching and closes the events channel.
	Close() error
}
