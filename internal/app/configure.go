package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lmu-times-deploy/internal/core"
	"lmu-times-deploy/internal/policies"
	"lmu-times-deploy/internal/types"
)

// Configure prompts for a component's environment values and writes
// its .env file. An existing file is only overwritten after an
// explicit confirmation (or with Force set).
func (s Service) Configure(ctx context.Context, req ConfigureRequest) (ConfigureResult, error) {
	spec, err := s.loadSpec(ctx, req.SpecPath)
	if err != nil {
		return ConfigureResult{}, err
	}
	var component *types.EnvComponentSpec
	switch req.Component {
	case types.ComponentKindBackend:
		component = spec.Components.Backend
	case types.ComponentKindBot:
		component = spec.Components.Bot
	default:
		return ConfigureResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported component: %s", req.Component))
	}
	if component == nil {
		return ConfigureResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("component %s is not declared in the deploy spec", req.Component))
	}

	envPath := filepath.Join(component.Dir, component.EnvFile)
	_, statErr := os.Stat(envPath)
	if policies.NeedsOverwriteConfirm(statErr == nil, req.Force) {
		ok, err := s.Prompter.Confirm(fmt.Sprintf("%s already exists, overwrite?", envPath))
		if err != nil {
			return ConfigureResult{}, err
		}
		if !ok {
			return ConfigureResult{}, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("refusing to overwrite " + envPath)
		}
	}

	entries := make([]types.EnvEntry, 0, len(component.Fields))
	for _, field := range component.Fields {
		value, err := s.askValue(field.Label, field.Default, field.Kind)
		if err != nil {
			return ConfigureResult{}, err
		}
		entries = append(entries, types.EnvEntry{Key: field.Key, Value: value})
	}
	if err := s.EnvWriter.Write(envPath, entries); err != nil {
		return ConfigureResult{}, err
	}
	log.Info().Str("component", string(req.Component)).Str("env", envPath).Int("keys", len(entries)).Msg("environment file written")
	return ConfigureResult{EnvPath: envPath, Keys: len(entries)}, nil
}

// askValue runs one prompt, re-asking when a version-kind answer is
// not a valid PEP 440 version.
func (s Service) askValue(label string, defaultValue string, kind types.FieldKind) (string, error) {
	for {
		value, err := s.Prompter.Ask(label, defaultValue)
		if err != nil {
			return "", err
		}
		if kind == types.FieldKindVersion {
			if err := core.ValidateVersion(value); err != nil {
				log.Warn().Str("value", value).Msg("not a valid version, try again")
				continue
			}
		}
		return value, nil
	}
}
