package ports

// PackageRequest carries the fixed packager invocation: single-file,
// windowed, named output with an embedded icon.
type PackageRequest struct {
	ProjectDir string
	EntryPoint string
	AppName    string
	IconPath   string
}

// PackagerPort drives the external packaging tool.
type PackagerPort interface {
	Package(req PackageRequest) error
}
