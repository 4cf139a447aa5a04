package app

import "lmu-times-deploy/internal/types"

type ConfigureRequest struct {
	SpecPath  string
	Component types.ComponentKind
	Force     bool
}

type ConfigureResult struct {
	EnvPath string
	Keys    int
}

type PatchRequest struct {
	FilePath string
	Constant string
	Value    string
}

type PatchResult struct {
	BackupPath string
}

type RevertRequest struct {
	SpecPath string
	FilePath string
}

type RevertResult struct {
	Restored []string
}

type EmbedRequest struct {
	IconPath   string
	SourcePath string
	Token      string
}

type EmbedResult struct {
	BackupPath string
}

type VenvRequest struct {
	ProjectDir string
	Python     string
}

type VenvResult struct {
	VenvDir      string
	Created      bool
	ManifestSeen bool
}

type PackageRequest struct {
	ProjectDir string
	EntryPoint string
	AppName    string
	IconPath   string
	OutputDir  string
}

type PackageResult struct {
	ArtifactPath string
	Found        bool
	DistListing  []string
}

type BuildRequest struct {
	SpecPath  string
	OutputDir string
	Python    string
}

type BuildResult struct {
	AppName      string
	ArtifactPath string
	Found        bool
	DistListing  []string
}

type StatusRequest struct {
	SpecPath string
}

type StatusResult struct {
	Targets            []types.TargetState
	ResourcesFile      string
	PlaceholderPresent bool
}
