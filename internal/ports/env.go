package ports

import "lmu-times-deploy/internal/types"

// EnvWriterPort writes key/value configuration files for components
// that read their settings from a .env file at startup.
type EnvWriterPort interface {
	Write(path string, entries []types.EnvEntry) error
}
