package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Embed(ctx context.Context, req EmbedRequest) (EmbedResult, error) {
	if strings.TrimSpace(req.IconPath) == "" || strings.TrimSpace(req.SourcePath) == "" {
		return EmbedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("icon path and source path are required")
	}
	outcome, err := s.Embedder.Embed(req.IconPath, req.SourcePath, req.Token)
	if err != nil {
		return EmbedResult{}, err
	}
	log.Info().Str("source", outcome.FilePath).Str("icon", req.IconPath).Msg("icon resource embedded")
	return EmbedResult{BackupPath: outcome.BackupPath}, nil
}
