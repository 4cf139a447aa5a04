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

type PatchFileAdapter struct{}

func NewPatchFileAdapter() PatchFileAdapter {
	return PatchFileAdapter{}
}

func (a PatchFileAdapter) Patch(target types.PatchTarget) (types.PatchOutcome, error) {
	info, err := os.Stat(target.FilePath)
	if err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("patch target not found: " + target.FilePath).
			WithCause(err)
	}
	backupPath := shared.BackupPath(target.FilePath)
	if err := policies.AllowPatch(target.FilePath, fileExists(backupPath)); err != nil {
		return types.PatchOutcome{}, err
	}
	if len(target.Subs) == 0 {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("patch target has no substitutions")
	}
	original, err := os.ReadFile(target.FilePath)
	if err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read patch target").
			WithCause(err)
	}
	// All substitutions must succeed before anything is written, so a
	// pattern miss leaves the file untouched.
	patched := string(original)
	for _, sub := range target.Subs {
		patched, err = core.PatchConstant(patched, sub.ConstantName, sub.NewValue)
		if err != nil {
			return types.PatchOutcome{}, err
		}
	}
	// Backup before overwrite so the original stays recoverable even
	// when the second write fails partway.
	if err := os.WriteFile(backupPath, original, info.Mode().Perm()); err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write backup").
			WithCause(err)
	}
	if err := os.WriteFile(target.FilePath, []byte(patched), info.Mode().Perm()); err != nil {
		return types.PatchOutcome{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write patched file").
			WithCause(err)
	}
	return types.PatchOutcome{FilePath: target.FilePath, BackupPath: backupPath}, nil
}

func (a PatchFileAdapter) Revert(filePath string) error {
	backupPath := shared.BackupPath(filePath)
	if err := policies.AllowRevert(filePath, fileExists(backupPath)); err != nil {
		return err
	}
	if err := os.Rename(backupPath, filePath); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to restore backup for " + filePath).
			WithCause(err)
	}
	return nil
}

func (a PatchFileAdapter) Patched(filePath string) (bool, error) {
	if _, err := os.Stat(filePath); err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("patch target not found: " + filePath).
			WithCause(err)
	}
	return fileExists(shared.BackupPath(filePath)), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

var _ ports.ConstantPatchPort = PatchFileAdapter{}
