package ports

// VenvResult describes the isolated runtime environment after
// EnsureEnvironment returns.
type VenvResult struct {
	VenvDir      string
	Created      bool
	ManifestSeen bool
}

// VenvPort creates per-project Python virtual environments and
// installs their declared dependencies plus the packaging tool.
type VenvPort interface {
	EnsureEnvironment(projectDir string) (VenvResult, error)
}
