package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lmu-times-deploy/internal/core"
	"lmu-times-deploy/internal/policies"
	"lmu-times-deploy/internal/ports"
	"lmu-times-deploy/internal/shared"
	"lmu-times-deploy/internal/types"
)

type IconEmbedAdapter struct{}

func NewIconEmbedAdapter() IconEmbedAdapter {
	return IconEmbedAdapter{}
}

func (a IconEmbedAdapter) Embed(iconPath string, sourcePath string, token string) (types.PatchOutcome, error) {
	icon, err := os.ReadFile(iconPath)
	if err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("icon resource not found: " + iconPath).
			WithCause(err)
	}
	info, err := os.Stat(sourcePath)
	if err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("embed target not found: " + sourcePath).
			WithCause(err)
	}
	backupPath := shared.BackupPath(sourcePath)
	if err := policies.AllowPatch(sourcePath, fileExists(backupPath)); err != nil {
		return types.PatchOutcome{}, err
	}
	original, err := os.ReadFile(sourcePath)
	if err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read embed target").
			WithCause(err)
	}
	embedded, err := core.EmbedPayload(string(original), token, icon)
	if err != nil {
		return types.PatchOutcome{}, err
	}
	if err := os.WriteFile(backupPath, original, info.Mode().Perm()); err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write backup").
			WithCause(err)
	}
	if err := os.WriteFile(sourcePath, []byte(embedded), info.Mode().Perm()); err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write embedded file").
			WithCause(err)
	}
	return types.PatchOutcome{FilePath: sourcePath, BackupPath: backupPath}, nil
}

var _ ports.ResourceEmbedPort = IconEmbedAdapter{}
