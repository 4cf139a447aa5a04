package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lmu-times-deploy/internal/types"
)

func (s Service) Patch(ctx context.Context, req PatchRequest) (PatchResult, error) {
	if strings.TrimSpace(req.FilePath) == "" {
		return PatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("patch file path is required")
	}
	outcome, err := s.Patcher.Patch(types.PatchTarget{
		FilePath: req.FilePath,
		Subs: []types.ConstantSub{
			{ConstantName: req.Constant, NewValue: req.Value},
		},
	})
	if err != nil {
		return PatchResult{}, err
	}
	log.Info().Str("file", outcome.FilePath).Str("constant", req.Constant).Msg("patched constant")
	return PatchResult{BackupPath: outcome.BackupPath}, nil
}

// Revert restores .bak backups. With a file path it reverts that one
// file; otherwise it walks the recorder component's patch targets and
// resources file, restoring every backup it finds.
func (s Service) Revert(ctx context.Context, req RevertRequest) (RevertResult, error) {
	if strings.TrimSpace(req.FilePath) != "" {
		if err := s.Patcher.Revert(req.FilePath); err != nil {
			return RevertResult{}, err
		}
		return RevertResult{Restored: []string{req.FilePath}}, nil
	}

	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return RevertResult{}, err
	}
	recorder := spec.Components.Recorder
	if recorder == nil {
		return RevertResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("recorder component is not declared in the deploy spec")
	}
	var restored []string
	for _, file := range recorderFiles(recorder) {
		patched, err := s.Patcher.Patched(file)
		if err != nil {
			return RevertResult{}, err
		}
		if !patched {
			continue
		}
		if err := s.Patcher.Revert(file); err != nil {
			return RevertResult{}, err
		}
		log.Info().Str("file", file).Msg("backup restored")
		restored = append(restored, file)
	}
	return RevertResult{Restored: restored}, nil
}

// recorderFiles lists every recorder file the pipeline may back up:
// each patch target once, plus the resources file when an icon
// placeholder is declared.
func recorderFiles(recorder *types.RecorderSpec) []string {
	seen := map[string]struct{}{}
	var files []string
	add := func(relative string) {
		if strings.TrimSpace(relative) == "" {
			return
		}
		path := filepath.Join(recorder.Dir, relative)
		if _, exists := seen[path]; exists {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}
	for _, patch := range recorder.Patches {
		add(patch.File)
	}
	add(recorder.ResourcesFile)
	return files
}
