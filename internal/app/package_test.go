package app

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"lmu-times-deploy/internal/core"
	"lmu-times-deploy/internal/ports"
)

func TestPackageRelocatesArtifact(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, filepath.Join(projectDir, "main.py"), "print()\n")

	packager := &fakePackager{}
	service := testService(&scriptedPrompter{}, &fakeVenv{}, packager)

	outDir := filepath.Join(projectDir, "out")
	result, err := service.Package(t.Context(), PackageRequest{
		ProjectDir: projectDir,
		EntryPoint: "main.py",
		AppName:    "LMU Times Recorder",
		IconPath:   "assets/icon.ico",
		OutputDir:  outDir,
	})
	require.NoError(t, err)
	require.True(t, result.Found)

	artifactName := core.ArtifactCandidates("LMU Times Recorder", runtime.GOOS)[0]
	require.Equal(t, filepath.Join(outDir, artifactName), result.ArtifactPath)
	require.FileExists(t, result.ArtifactPath)
	require.NoFileExists(t, filepath.Join(projectDir, "dist", artifactName))

	require.Len(t, packager.requests, 1)
	require.Equal(t, "main.py", packager.requests[0].EntryPoint)
}

func TestPackageNameMissDegradesToWarning(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, filepath.Join(projectDir, "main.py"), "print()\n")

	packager := &fakePackager{artifactName: "UnexpectedName"}
	service := testService(&scriptedPrompter{}, &fakeVenv{}, packager)

	result, err := service.Package(t.Context(), PackageRequest{
		ProjectDir: projectDir,
		EntryPoint: "main.py",
		AppName:    "MyApp",
	})
	require.NoError(t, err)
	require.False(t, result.Found)
	require.Equal(t, []string{"UnexpectedName"}, result.DistListing)
	require.Empty(t, result.ArtifactPath)
}

func TestPackageMissingEntryPoint(t *testing.T) {
	projectDir := t.TempDir()
	service := testService(&scriptedPrompter{}, &fakeVenv{}, &fakePackager{})

	_, err := service.Package(t.Context(), PackageRequest{
		ProjectDir: projectDir,
		EntryPoint: "main.py",
		AppName:    "MyApp",
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestVenvRequiresProjectDir(t *testing.T) {
	service := testService(&scriptedPrompter{}, &fakeVenv{}, &fakePackager{})
	_, err := service.Venv(t.Context(), VenvRequest{})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestVenvDelegates(t *testing.T) {
	venv := &fakeVenv{}
	service := testService(&scriptedPrompter{}, venv, &fakePackager{})

	projectDir := t.TempDir()
	result, err := service.Venv(t.Context(), VenvRequest{ProjectDir: projectDir})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(projectDir, ".venv"), result.VenvDir)
	require.Equal(t, []string{projectDir}, venv.projects)
}

// noopPackager reports success without producing any artifact, so no
// dist directory ever appears.
type noopPackager struct{}

func (noopPackager) Package(ports.PackageRequest) error { return nil }

func TestPackageMissingDistDegradesToWarning(t *testing.T) {
	projectDir := t.TempDir()
	writeFile(t, filepath.Join(projectDir, "main.py"), "print()\n")

	service := testService(&scriptedPrompter{}, &fakeVenv{}, &fakePackager{})
	service.Packager = noopPackager{}

	result, err := service.Package(t.Context(), PackageRequest{
		ProjectDir: projectDir,
		EntryPoint: "main.py",
		AppName:    "MyApp",
	})
	require.NoError(t, err)
	require.False(t, result.Found)
	require.NoDirExists(t, filepath.Join(projectDir, "dist"))
}
