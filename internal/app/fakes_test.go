package app

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"lmu-times-deploy/internal/adapters"
	"lmu-times-deploy/internal/core"
	"lmu-times-deploy/internal/ports"
)

// scriptedPrompter replays queued answers; an empty answer accepts the
// default like a bare return at a real terminal.
type scriptedPrompter struct {
	answers  []string
	confirms []bool
}

func (p *scriptedPrompter) Ask(label string, defaultValue string) (string, error) {
	for len(p.answers) > 0 {
		answer := p.answers[0]
		p.answers = p.answers[1:]
		if answer == "" && defaultValue != "" {
			return defaultValue, nil
		}
		if answer != "" {
			return answer, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("scripted prompter exhausted: " + label)
}

func (p *scriptedPrompter) Confirm(question string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("scripted prompter has no confirmation for: " + question)
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

type fakeVenv struct {
	projects []string
}

func (v *fakeVenv) EnsureEnvironment(projectDir string) (ports.VenvResult, error) {
	v.projects = append(v.projects, projectDir)
	return ports.VenvResult{VenvDir: filepath.Join(projectDir, ".venv")}, nil
}

// fakePackager drops an artifact into dist/ under the configured name.
type fakePackager struct {
	artifactName string
	requests     []ports.PackageRequest
}

func (p *fakePackager) Package(req ports.PackageRequest) error {
	p.requests = append(p.requests, req)
	name := p.artifactName
	if name == "" {
		name = core.ArtifactCandidates(req.AppName, runtime.GOOS)[0]
	}
	distDir := filepath.Join(req.ProjectDir, "dist")
	if err := os.MkdirAll(distDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(distDir, name), []byte("binary"), 0o755)
}

// testService wires real file adapters with scripted operator input
// and fake external tools.
func testService(prompter *scriptedPrompter, venv *fakeVenv, packager *fakePackager) Service {
	return Service{
		SpecLoader: adapters.NewSpecFileAdapter(),
		Prompter:   prompter,
		Patcher:    adapters.NewPatchFileAdapter(),
		Embedder:   adapters.NewIconEmbedAdapter(),
		EnvWriter:  adapters.NewEnvFileAdapter(),
		NewVenv:    func(string) ports.VenvPort { return venv },
		Packager:   packager,
		Artifacts:  adapters.NewArtifactAdapter(),
	}
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
