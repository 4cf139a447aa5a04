package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"lmu-times-deploy/internal/types"
)

type SpecCompiler struct{}

func NewSpecCompiler() SpecCompiler {
	return SpecCompiler{}
}

var validFieldKinds = map[types.FieldKind]struct{}{
	"":                     {},
	types.FieldKindText:    {},
	types.FieldKindURL:     {},
	types.FieldKindVersion: {},
}

func (c SpecCompiler) ValidateSpec(ctx context.Context, spec types.Spec) error {
	assert.NotEmpty(ctx, spec.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(spec.Kind), "kind must be set")
	assert.NotEmpty(ctx, spec.Metadata.Name, "metadata.name must be set")
	if spec.Kind != types.SpecKindDeploy {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind must be deploy")
	}
	if spec.Components.Backend == nil && spec.Components.Bot == nil && spec.Components.Recorder == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("components must declare at least one of backend, bot, recorder")
	}
	if err := validateEnvComponent("backend", spec.Components.Backend); err != nil {
		return err
	}
	if err := validateEnvComponent("bot", spec.Components.Bot); err != nil {
		return err
	}
	if err := validateRecorder(spec.Components.Recorder); err != nil {
		return err
	}
	return nil
}

func validateEnvComponent(name string, component *types.EnvComponentSpec) error {
	if component == nil {
		return nil
	}
	if strings.TrimSpace(component.Dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("components.%s.dir must be set", name))
	}
	if len(component.Fields) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("components.%s.fields must not be empty", name))
	}
	seen := map[string]struct{}{}
	for _, field := range component.Fields {
		if strings.TrimSpace(field.Key) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.%s field key must be set", name))
		}
		if _, exists := seen[field.Key]; exists {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.%s declares duplicate key %s", name, field.Key))
		}
		seen[field.Key] = struct{}{}
		if _, ok := validFieldKinds[field.Kind]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.%s key %s has unsupported kind %s", name, field.Key, field.Kind))
		}
	}
	return nil
}

func validateRecorder(recorder *types.RecorderSpec) error {
	if recorder == nil {
		return nil
	}
	if strings.TrimSpace(recorder.Dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("components.recorder.dir must be set")
	}
	if strings.TrimSpace(recorder.EntryPoint) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("components.recorder.entry_point must be set")
	}
	fields := map[string]types.PromptField{}
	for _, field := range recorder.Fields {
		if strings.TrimSpace(field.Name) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("components.recorder field name must be set")
		}
		if _, exists := fields[field.Name]; exists {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.recorder declares duplicate field %s", field.Name))
		}
		if _, ok := validFieldKinds[field.Kind]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.recorder field %s has unsupported kind %s", field.Name, field.Kind))
		}
		fields[field.Name] = field
	}
	for _, patch := range recorder.Patches {
		if strings.TrimSpace(patch.File) == "" || strings.TrimSpace(patch.Constant) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("components.recorder patches require file and constant")
		}
		if _, ok := fields[patch.Field]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.recorder patch %s references unknown field %s", patch.Constant, patch.Field))
		}
	}
	if recorder.AppNameField != "" {
		if _, ok := fields[recorder.AppNameField]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("components.recorder app_name_field references unknown field %s", recorder.AppNameField))
		}
	}
	if strings.TrimSpace(recorder.Placeholder) != "" && strings.TrimSpace(recorder.ResourcesFile) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("components.recorder.resources_file must be set when placeholder is declared")
	}
	return nil
}
