package ports

// Watcher monitors the dashboard template for changes so the server can reload it.
// The adapter (fsnotify) filters events down to the watched file and debounces
// bursts of writes before invoking onChange.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute path
	// of the file each time it is written, created, renamed or removed. The
	// callback may be invoked from any goroutine.
	Watch(path string, onChange func(filePath string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
