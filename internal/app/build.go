package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lmu-times-deploy/internal/types"
)

// Build runs the whole recorder pipeline: prompt, patch constants,
// embed the icon, prepare the virtual environment, package, relocate.
// Stages run strictly in order and the first failure aborts the run;
// already-patched files stay patched and are reverted manually (or
// with the revert command).
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return BuildResult{}, err
	}
	recorder := spec.Components.Recorder
	if recorder == nil {
		return BuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("recorder component is not declared in the deploy spec")
	}

	answers := map[string]string{}
	for _, field := range recorder.Fields {
		value, err := s.askValue(field.Label, field.Default, field.Kind)
		if err != nil {
			return BuildResult{}, err
		}
		answers[field.Name] = value
	}

	for _, target := range groupPatches(recorder, answers) {
		outcome, err := s.Patcher.Patch(target)
		if err != nil {
			return BuildResult{}, err
		}
		log.Info().Str("file", outcome.FilePath).Int("constants", len(target.Subs)).Msg("patched constants")
	}

	if strings.TrimSpace(recorder.Placeholder) != "" {
		outcome, err := s.Embedder.Embed(
			filepath.Join(recorder.Dir, recorder.Icon),
			filepath.Join(recorder.Dir, recorder.ResourcesFile),
			recorder.Placeholder,
		)
		if err != nil {
			return BuildResult{}, err
		}
		log.Info().Str("source", outcome.FilePath).Msg("icon resource embedded")
	}

	python := strings.TrimSpace(req.Python)
	if python == "" {
		python = spec.Defaults.Python
	}
	if _, err := s.NewVenv(python).EnsureEnvironment(recorder.Dir); err != nil {
		return BuildResult{}, err
	}

	appName := spec.Metadata.Name
	if recorder.AppNameField != "" {
		if value := answers[recorder.AppNameField]; strings.TrimSpace(value) != "" {
			appName = value
		}
	}
	outDir := strings.TrimSpace(req.OutputDir)
	if outDir == "" {
		outDir = spec.Defaults.OutputDir
	}
	result, err := s.Package(ctx, PackageRequest{
		ProjectDir: recorder.Dir,
		EntryPoint: recorder.EntryPoint,
		AppName:    appName,
		IconPath:   recorder.Icon,
		OutputDir:  outDir,
	})
	if err != nil {
		return BuildResult{}, err
	}
	return BuildResult{
		AppName:      appName,
		ArtifactPath: result.ArtifactPath,
		Found:        result.Found,
		DistListing:  result.DistListing,
	}, nil
}

// groupPatches collapses the spec's per-constant patch entries into
// one PatchTarget per file, keeping declaration order, so each file is
// backed up and written once.
func groupPatches(recorder *types.RecorderSpec, answers map[string]string) []types.PatchTarget {
	index := map[string]int{}
	var targets []types.PatchTarget
	for _, patch := range recorder.Patches {
		path := filepath.Join(recorder.Dir, patch.File)
		sub := types.ConstantSub{ConstantName: patch.Constant, NewValue: answers[patch.Field]}
		if i, exists := index[path]; exists {
			targets[i].Subs = append(targets[i].Subs, sub)
			continue
		}
		index[path] = len(targets)
		targets = append(targets, types.PatchTarget{FilePath: path, Subs: []types.ConstantSub{sub}})
	}
	return targets
}
