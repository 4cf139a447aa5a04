package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"lmu-times-deploy/internal/ports"
)

// Package drives the external packager and relocates its artifact.
// A missing artifact after a successful build is reported as a
// warning, not a failure: the build itself succeeded and the operator
// can recover the file by hand.
func (s Service) Package(ctx context.Context, req PackageRequest) (PackageResult, error) {
	if strings.TrimSpace(req.ProjectDir) == "" || strings.TrimSpace(req.EntryPoint) == "" {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project directory and entry point are required")
	}
	if strings.TrimSpace(req.AppName) == "" {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("application name is required")
	}
	if _, err := os.Stat(filepath.Join(req.ProjectDir, req.EntryPoint)); err != nil {
		return PackageResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("entry point not found: " + req.EntryPoint).
			WithCause(err)
	}

	if err := s.Packager.Package(ports.PackageRequest{
		ProjectDir: req.ProjectDir,
		EntryPoint: req.EntryPoint,
		AppName:    req.AppName,
		IconPath:   req.IconPath,
	}); err != nil {
		return PackageResult{}, err
	}

	distDir := filepath.Join(req.ProjectDir, "dist")
	artifactPath, found, listing, err := s.Artifacts.Locate(distDir, req.AppName)
	if err != nil {
		log.Warn().Str("dist", distDir).Err(err).Msg("dist directory missing after build, intervention needed")
		return PackageResult{Found: false}, nil
	}
	if !found {
		log.Warn().Str("dist", distDir).Strs("contents", listing).Msg("artifact not found under expected name, intervention needed")
		return PackageResult{Found: false, DistListing: listing}, nil
	}

	outDir := strings.TrimSpace(req.OutputDir)
	if outDir == "" {
		outDir = filepath.Join(req.ProjectDir, "out")
	}
	finalPath, err := s.Artifacts.Relocate(artifactPath, outDir)
	if err != nil {
		return PackageResult{}, err
	}
	log.Info().Str("artifact", finalPath).Msg("artifact relocated")
	return PackageResult{ArtifactPath: finalPath, Found: true}, nil
}
