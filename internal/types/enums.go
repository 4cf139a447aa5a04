package types

type SpecKind string

const (
	SpecKindDeploy SpecKind = "deploy"
)

type ComponentKind string

const (
	ComponentKindBackend  ComponentKind = "backend"
	ComponentKindBot      ComponentKind = "bot"
	ComponentKindRecorder ComponentKind = "recorder"
)

type FieldKind string

const (
	FieldKindText    FieldKind = "text"
	FieldKindURL     FieldKind = "url"
	FieldKindVersion FieldKind = "version"
)
