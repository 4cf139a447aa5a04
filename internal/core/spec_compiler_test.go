package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"lmu-times-deploy/internal/types"
)

func validSpec() types.Spec {
	return types.Spec{
		APIVersion: "v1",
		Kind:       types.SpecKindDeploy,
		Metadata:   types.Metadata{Name: "LMU Times Recorder", Version: "1.0"},
		Components: types.Components{
			Bot: &types.EnvComponentSpec{
				Dir: "/tmp/bot",
				Fields: []types.EnvField{
					{Key: "TOKEN", Label: "Bot token", Secret: true},
					{Key: "GUILD_ID", Label: "Guild id"},
				},
			},
			Recorder: &types.RecorderSpec{
				Dir:           "/tmp/recorder",
				EntryPoint:    "main.py",
				Icon:          "assets/icon.ico",
				ResourcesFile: "utils/resources.py",
				Placeholder:   "<ICON_BASE64>",
				AppNameField:  "app_name",
				Fields: []types.PromptField{
					{Name: "app_name", Label: "Application name", Default: "LMU Times Recorder"},
					{Name: "version", Label: "Release version", Kind: types.FieldKindVersion},
				},
				Patches: []types.PatchTargetSpec{
					{File: "config/settings.py", Constant: "APP_NAME", Field: "app_name"},
					{File: "config/settings.py", Constant: "__version__", Field: "version"},
				},
			},
		},
	}
}

func TestValidateSpecAccepts(t *testing.T) {
	compiler := NewSpecCompiler()
	require.NoError(t, compiler.ValidateSpec(t.Context(), validSpec()))
}

func TestValidateSpecRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Spec)
	}{
		{name: "wrong kind", mutate: func(s *types.Spec) { s.Kind = "product" }},
		{name: "no components", mutate: func(s *types.Spec) { s.Components = types.Components{} }},
		{name: "bot without dir", mutate: func(s *types.Spec) { s.Components.Bot.Dir = "" }},
		{name: "bot without fields", mutate: func(s *types.Spec) { s.Components.Bot.Fields = nil }},
		{name: "duplicate env key", mutate: func(s *types.Spec) {
			s.Components.Bot.Fields = append(s.Components.Bot.Fields, types.EnvField{Key: "TOKEN", Label: "again"})
		}},
		{name: "unknown field kind", mutate: func(s *types.Spec) { s.Components.Bot.Fields[0].Kind = "number" }},
		{name: "recorder without entry point", mutate: func(s *types.Spec) { s.Components.Recorder.EntryPoint = "" }},
		{name: "patch references unknown field", mutate: func(s *types.Spec) {
			s.Components.Recorder.Patches[0].Field = "missing"
		}},
		{name: "app name field unknown", mutate: func(s *types.Spec) { s.Components.Recorder.AppNameField = "missing" }},
		{name: "placeholder without resources file", mutate: func(s *types.Spec) { s.Components.Recorder.ResourcesFile = "" }},
	}
	compiler := NewSpecCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec()
			tt.mutate(&spec)
			err := compiler.ValidateSpec(t.Context(), spec)
			require.Error(t, err)
			require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}
