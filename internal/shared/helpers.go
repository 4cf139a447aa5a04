// Package shared provides common utility functions used across multiple
// packages in the lmu-times-deploy codebase.
package shared

import (
	"fmt"
	"strings"
)

// BackupSuffix is appended to a file path to derive its pre-patch
// backup location.
const BackupSuffix = ".bak"

// BackupPath derives the backup file path for a patch target.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}
