package ports

import "lmu-times-deploy/internal/types"

// ConstantPatchPort rewrites quoted constant assignments in source
// files, keeping a backup of the pre-patch content.
type ConstantPatchPort interface {
	// Patch writes a backup beside the target, then substitutes the
	// constant's literal value. It refuses to run when a backup
	// already exists.
	Patch(target types.PatchTarget) (types.PatchOutcome, error)

	// Revert restores the backup over the patched file and removes
	// the backup.
	Revert(filePath string) error

	// Patched reports whether a backup exists for the target file.
	Patched(filePath string) (bool, error)
}
