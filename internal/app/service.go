package app

import (
	"context"
	"os"
	"strings"

	"lmu-times-deploy/internal/adapters"
	"lmu-times-deploy/internal/core"
	"lmu-times-deploy/internal/ports"
	"lmu-times-deploy/internal/types"
)

type Service struct {
	SpecLoader ports.DeploySpecPort
	Prompter   ports.PrompterPort
	Patcher    ports.ConstantPatchPort
	Embedder   ports.ResourceEmbedPort
	EnvWriter  ports.EnvWriterPort
	NewVenv    func(python string) ports.VenvPort
	Packager   ports.PackagerPort
	Artifacts  ports.ArtifactPort
}

func NewService() Service {
	return Service{
		SpecLoader: adapters.NewSpecFileAdapter(),
		Prompter:   adapters.NewPrompterAdapter(os.Stdin, os.Stdout),
		Patcher:    adapters.NewPatchFileAdapter(),
		Embedder:   adapters.NewIconEmbedAdapter(),
		EnvWriter:  adapters.NewEnvFileAdapter(),
		NewVenv: func(python string) ports.VenvPort {
			return adapters.NewVenvAdapter(python)
		},
		Packager:  adapters.NewPyInstallerAdapter(),
		Artifacts: adapters.NewArtifactAdapter(),
	}
}

const defaultSpecPath = "deploy.yaml"

func (s Service) loadSpec(ctx context.Context, path string) (types.Spec, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultSpecPath
	}
	spec, err := s.SpecLoader.LoadDeploy(path)
	if err != nil {
		return types.Spec{}, err
	}
	if err := core.NewSpecCompiler().ValidateSpec(ctx, spec); err != nil {
		return types.Spec{}, err
	}
	return spec, nil
}
