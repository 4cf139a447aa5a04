package core

// ArtifactCandidates returns the artifact file names to look for in
// the packager's dist directory, preferred name first. Windows builds
// carry the .exe suffix; other platforms usually do not, but the
// alternate spelling is kept as a fallback for cross-built trees.
func ArtifactCandidates(appName string, goos string) []string {
	if goos == "windows" {
		return []string{appName + ".exe", appName}
	}
	return []string{appName, appName + ".exe"}
}
