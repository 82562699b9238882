package ports

// FileOutput performs the filesystem side-effects of a module run.
type FileOutput interface {
	// WriteTextToFile creates or truncates path and writes text to it.
	WriteTextToFile(path, text string) error

	// CopyFile copies src to dst. src must stay readable afterwards.
	CopyFile(src, dst string) error
}
