package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lmu-times-deploy/internal/types"
)

// Status reports the patch state of the recorder component without
// mutating anything: which targets carry a backup, and whether the
// icon placeholder is still present in the resources file.
func (s Service) Status(ctx context.Context, req StatusRequest) (StatusResult, error) {
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return StatusResult{}, err
	}
	recorder := spec.Components.Recorder
	if recorder == nil {
		return StatusResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("recorder component is not declared in the deploy spec")
	}

	var targets []types.TargetState
	for _, patch := range recorder.Patches {
		path := filepath.Join(recorder.Dir, patch.File)
		patched, err := s.Patcher.Patched(path)
		if err != nil {
			return StatusResult{}, err
		}
		targets = append(targets, types.TargetState{
			FilePath:     path,
			ConstantName: patch.Constant,
			Patched:      patched,
		})
	}

	result := StatusResult{Targets: targets}
	if strings.TrimSpace(recorder.Placeholder) != "" {
		resourcesFile := filepath.Join(recorder.Dir, recorder.ResourcesFile)
		content, err := os.ReadFile(resourcesFile)
		if err != nil {
			return StatusResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("resources file not found: " + resourcesFile).
				WithCause(err)
		}
		result.ResourcesFile = resourcesFile
		result.PlaceholderPresent = strings.Contains(string(content), recorder.Placeholder)
	}
	return result, nil
}
