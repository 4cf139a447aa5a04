package adapters

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lmu-times-deploy/internal/core"
	"lmu-times-deploy/internal/ports"
)

type ArtifactAdapter struct{}

func NewArtifactAdapter() ArtifactAdapter {
	return ArtifactAdapter{}
}

func (a ArtifactAdapter) Locate(distDir string, appName string) (string, bool, []string, error) {
	for _, name := range core.ArtifactCandidates(appName, runtime.GOOS) {
		candidate := filepath.Join(distDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil, nil
		}
	}
	entries, err := os.ReadDir(distDir)
	if err != nil {
		return "", false, nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("dist directory not found: " + distDir).
			WithCause(err)
	}
	listing := make([]string, 0, len(entries))
	for _, entry := range entries {
		listing = append(listing, entry.Name())
	}
	return "", false, listing, nil
}

func (a ArtifactAdapter) Relocate(artifactPath string, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	destPath := filepath.Join(outDir, filepath.Base(artifactPath))
	if err := os.Rename(artifactPath, destPath); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if err := copyFile(artifactPath, destPath); err != nil {
			return "", err
		}
		if err := os.Remove(artifactPath); err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove original artifact").
				WithCause(err)
		}
	}
	return destPath, nil
}

func copyFile(srcPath string, destPath string) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to open artifact").
			WithCause(err)
	}
	defer srcFile.Close()
	info, err := srcFile.Stat()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat artifact").
			WithCause(err)
	}
	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create relocated artifact").
			WithCause(err)
	}
	defer destFile.Close()
	if _, err := io.Copy(destFile, srcFile); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to copy artifact").
			WithCause(err)
	}
	return nil
}

var _ ports.ArtifactPort = ArtifactAdapter{}
