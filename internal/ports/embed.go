package ports

import "lmu-times-deploy/internal/types"

// ResourceEmbedPort substitutes an icon placeholder token in a source
// file with the base64-encoded icon bytes.
type ResourceEmbedPort interface {
	Embed(iconPath string, sourcePath string, token string) (types.PatchOutcome, error)
}
