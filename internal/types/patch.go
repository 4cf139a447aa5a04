package types

// ConstantSub replaces the quoted literal assigned to ConstantName
// with NewValue.
type ConstantSub struct {
	ConstantName string
	NewValue     string
}

// PatchTarget is a fully resolved patch for one file. All
// substitutions are applied in a single backup-then-write pass so a
// file holding several patched constants keeps one pre-patch backup.
type PatchTarget struct {
	FilePath string
	Subs     []ConstantSub
}

// PatchOutcome reports where the pre-patch backup was written.
type PatchOutcome struct {
	FilePath   string
	BackupPath string
}

// TargetState is the read-only patch status of one target file.
type TargetState struct {
	FilePath     string
	ConstantName string
	Patched      bool
}

// EnvEntry is one key/value pair destined for a generated .env file.
type EnvEntry struct {
	Key   string
	Value string
}

// BuildArtifact identifies the packaged executable after relocation.
type BuildArtifact struct {
	Name string
	Path string
}
