// Package storage defines the journal file-system abstraction.
package storage

// Provider is the interface for journal file operations. All paths are
// relative to the provider root.
type Provider interface {
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path, creating parent directories.
	Write(path string, content []byte) error
	// Append appends content to path, creating the file if needed.
	Append(path string, content []byte) error
	// Exists reports whether a regular file exists at path.
	Exists(path string) (bool, error)
	// ListMarkdown returns the relative paths of every .md file under dir,
	// sorted. A missing dir is not an error and yields no paths.
	ListMarkdown(dir string) ([]string, error)
}
