package ports

// PrompterPort collects configuration values from the operator.
type PrompterPort interface {
	// Ask presents a label with an optional default shown in brackets.
	// Empty input accepts the default; when no default is supplied the
	// prompt loops until a non-empty answer is given.
	Ask(label string, defaultValue string) (string, error)

	// Confirm presents a yes/no question and loops until the answer is
	// recognizable.
	Confirm(question string) (bool, error)
}
