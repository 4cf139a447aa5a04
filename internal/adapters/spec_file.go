package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"lmu-times-deploy/internal/ports"
	"lmu-times-deploy/internal/types"
)

type SpecFileAdapter struct{}

func NewSpecFileAdapter() SpecFileAdapter {
	return SpecFileAdapter{}
}

func (a SpecFileAdapter) LoadDeploy(path string) (types.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Spec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("deploy spec not found").
			WithCause(err)
	}
	var spec types.Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.Spec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse deploy spec yaml").
			WithCause(err)
	}
	if spec.Kind != types.SpecKindDeploy {
		return types.Spec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind is not deploy")
	}
	applySpecDefaults(&spec, filepath.Dir(path))
	return spec, nil
}

// applySpecDefaults resolves component directories relative to the
// spec file and fills in conventional defaults so the spec stays
// short for the common layout.
func applySpecDefaults(spec *types.Spec, baseDir string) {
	if spec.Defaults.OutputDir == "" {
		spec.Defaults.OutputDir = filepath.Join(baseDir, "out")
	} else if !filepath.IsAbs(spec.Defaults.OutputDir) {
		spec.Defaults.OutputDir = filepath.Join(baseDir, spec.Defaults.OutputDir)
	}
	for _, component := range []*types.EnvComponentSpec{spec.Components.Backend, spec.Components.Bot} {
		if component == nil {
			continue
		}
		if !filepath.IsAbs(component.Dir) {
			component.Dir = filepath.Join(baseDir, component.Dir)
		}
		if component.EnvFile == "" {
			component.EnvFile = ".env"
		}
	}
	if recorder := spec.Components.Recorder; recorder != nil {
		if !filepath.IsAbs(recorder.Dir) {
			recorder.Dir = filepath.Join(baseDir, recorder.Dir)
		}
	}
}

var _ ports.DeploySpecPort = SpecFileAdapter{}
