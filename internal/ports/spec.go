package ports

import "lmu-times-deploy/internal/types"

// DeploySpecPort loads deploy specs from disk.
type DeploySpecPort interface {
	LoadDeploy(path string) (types.Spec, error)
}
