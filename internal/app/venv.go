package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Venv(ctx context.Context, req VenvRequest) (VenvResult, error) {
	if strings.TrimSpace(req.ProjectDir) == "" {
		return VenvResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project directory is required")
	}
	result, err := s.NewVenv(req.Python).EnsureEnvironment(req.ProjectDir)
	if err != nil {
		return VenvResult{}, err
	}
	log.Info().Str("venv", result.VenvDir).Bool("created", result.Created).Msg("environment ready")
	return VenvResult{
		VenvDir:      result.VenvDir,
		Created:      result.Created,
		ManifestSeen: result.ManifestSeen,
	}, nil
}
