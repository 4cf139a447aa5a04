package adapters

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lmu-times-deploy/internal/ports"
	"lmu-times-deploy/internal/shared"
)

const venvDirName = ".venv"

// VenvAdapter manages per-project Python virtual environments using
// the operator's base interpreter.
type VenvAdapter struct {
	Python string
}

func NewVenvAdapter(python string) VenvAdapter {
	if strings.TrimSpace(python) == "" {
		python = defaultPython()
	}
	return VenvAdapter{Python: python}
}

func defaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

func (a VenvAdapter) EnsureEnvironment(projectDir string) (ports.VenvResult, error) {
	if _, err := os.Stat(projectDir); err != nil {
		return ports.VenvResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project directory not found: " + projectDir).
			WithCause(err)
	}
	venvDir := filepath.Join(projectDir, venvDirName)
	result := ports.VenvResult{VenvDir: venvDir}

	if _, err := os.Stat(venvDir); err == nil {
		log.Debug().Str("venv", venvDir).Msg("reusing existing virtual environment")
	} else {
		output, err := exec.Command(a.Python, "-m", "venv", venvDir).CombinedOutput()
		if err != nil {
			return ports.VenvResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("virtual environment creation failed").
				WithCause(shared.CommandError(output, err))
		}
		result.Created = true
	}

	python := VenvBinary(venvDir, "python")
	if err := runPip(python, "install", "--upgrade", "pip"); err != nil {
		return ports.VenvResult{}, err
	}

	manifest := filepath.Join(projectDir, "requirements.txt")
	if _, err := os.Stat(manifest); err == nil {
		result.ManifestSeen = true
		if err := runPip(python, "install", "-r", manifest); err != nil {
			return ports.VenvResult{}, err
		}
	} else {
		log.Warn().Str("project", projectDir).Msg("no requirements.txt found, skipping dependency install")
	}

	if err := runPip(python, "install", "pyinstaller"); err != nil {
		return ports.VenvResult{}, err
	}
	return result, nil
}

func runPip(python string, args ...string) error {
	full := append([]string{"-m", "pip"}, args...)
	output, err := exec.Command(python, full...).CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("pip " + args[0] + " failed").
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

// VenvBinary returns the path of an executable inside a virtual
// environment, honoring the platform layout.
func VenvBinary(venvDir string, name string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(venvDir, "Scripts", name+".exe")
	}
	return filepath.Join(venvDir, "bin", name)
}

var _ ports.VenvPort = VenvAdapter{}
