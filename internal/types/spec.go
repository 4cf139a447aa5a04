package types

type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// SpecDefaults provides project-level defaults that the CLI and
// application layer use when a value is not explicitly provided via
// flags or environment variables.
type SpecDefaults struct {
	OutputDir string `yaml:"output,omitempty"`
	Python    string `yaml:"python,omitempty"`
}

// PromptField describes one operator-supplied value. Fields without a
// default are mandatory; the prompt loops until a non-empty answer is
// given. Version fields are additionally validated as PEP 440 versions.
type PromptField struct {
	Name    string    `yaml:"name"`
	Label   string    `yaml:"label"`
	Default string    `yaml:"default,omitempty"`
	Kind    FieldKind `yaml:"kind,omitempty"`
}

// EnvField maps a prompt field onto a key in a generated .env file.
type EnvField struct {
	Key     string    `yaml:"key"`
	Label   string    `yaml:"label"`
	Default string    `yaml:"default,omitempty"`
	Kind    FieldKind `yaml:"kind,omitempty"`
	Secret  bool      `yaml:"secret,omitempty"`
}

// PatchTargetSpec binds a prompt field to a constant assignment inside
// a source file of the recorder component. File paths are relative to
// the component directory.
type PatchTargetSpec struct {
	File     string `yaml:"file"`
	Constant string `yaml:"constant"`
	Field    string `yaml:"field"`
}

type RecorderSpec struct {
	Dir           string            `yaml:"dir"`
	EntryPoint    string            `yaml:"entry_point"`
	Icon          string            `yaml:"icon"`
	ResourcesFile string            `yaml:"resources_file"`
	Placeholder   string            `yaml:"placeholder"`
	AppNameField  string            `yaml:"app_name_field"`
	Fields        []PromptField     `yaml:"fields"`
	Patches       []PatchTargetSpec `yaml:"patches"`
}

type EnvComponentSpec struct {
	Dir     string     `yaml:"dir"`
	EnvFile string     `yaml:"env_file,omitempty"`
	Fields  []EnvField `yaml:"fields"`
}

type Components struct {
	Backend  *EnvComponentSpec `yaml:"backend,omitempty"`
	Bot      *EnvComponentSpec `yaml:"bot,omitempty"`
	Recorder *RecorderSpec     `yaml:"recorder,omitempty"`
}

type Spec struct {
	APIVersion string       `yaml:"api_version"`
	Kind       SpecKind     `yaml:"kind"`
	Metadata   Metadata     `yaml:"metadata"`
	Defaults   SpecDefaults `yaml:"defaults,omitempty"`
	Components Components   `yaml:"components"`
}
