package adapters

import (
	"os/exec"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lmu-times-deploy/internal/ports"
	"lmu-times-deploy/internal/shared"
)

// PyInstallerAdapter invokes the pyinstaller from the project's
// virtual environment to produce a single-file windowed executable.
type PyInstallerAdapter struct{}

func NewPyInstallerAdapter() PyInstallerAdapter {
	return PyInstallerAdapter{}
}

func (a PyInstallerAdapter) Package(req ports.PackageRequest) error {
	pyinstaller := VenvBinary(filepath.Join(req.ProjectDir, venvDirName), "pyinstaller")
	args := []string{
		"--onefile",
		"--windowed",
		"--icon", req.IconPath,
		"--name", req.AppName,
		req.EntryPoint,
	}
	log.Debug().Str("entry", req.EntryPoint).Str("name", req.AppName).Msg("invoking pyinstaller")
	cmd := exec.Command(pyinstaller, args...)
	cmd.Dir = req.ProjectDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pyinstaller failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.PackagerPort = PyInstallerAdapter{}
