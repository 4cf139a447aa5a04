package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/joho/godotenv"

	"lmu-times-deploy/internal/ports"
	"lmu-times-deploy/internal/types"
)

// EnvFileAdapter writes .env configuration files through godotenv so
// quoting and escaping match what the components read at startup.
type EnvFileAdapter struct{}

func NewEnvFileAdapter() EnvFileAdapter {
	return EnvFileAdapter{}
}

func (a EnvFileAdapter) Write(path string, entries []types.EnvEntry) error {
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.Key] = entry.Value
	}
	if err := godotenv.Write(values, path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write env file: " + path).
			WithCause(err)
	}
	return nil
}

var _ ports.EnvWriterPort = EnvFileAdapter{}
