package ports

// ArtifactPort locates and relocates the packager's output executable.
type ArtifactPort interface {
	// Locate searches distDir for the artifact matching appName, with
	// or without the platform executable suffix. found is false when
	// no candidate exists; listing then holds the directory contents
	// for diagnostics.
	Locate(distDir string, appName string) (path string, found bool, listing []string, err error)

	// Relocate moves the artifact into outDir, creating it if absent,
	// and returns the final path. The original copy is removed.
	Relocate(artifactPath string, outDir string) (string, error)
}
