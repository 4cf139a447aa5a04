// Package policies holds the mutation-guard decisions shared by the
// patch, embed, and configure operations.
package policies

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// AllowPatch enforces the single-patch-pass invariant: a sibling
// backup file signals a prior unreverted run, and patching again would
// substitute on top of already-substituted content.
func AllowPatch(filePath string, backupExists bool) error {
	if backupExists {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("%s was previously patched; revert the backup before retrying", filePath))
	}
	return nil
}

// AllowRevert requires a backup to restore from.
func AllowRevert(filePath string, backupExists bool) error {
	if !backupExists {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no backup found for %s", filePath))
	}
	return nil
}

// NeedsOverwriteConfirm reports whether writing an env file requires
// an explicit operator confirmation first.
func NeedsOverwriteConfirm(envExists bool, force bool) bool {
	return envExists && !force
}
