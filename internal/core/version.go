package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

// ValidateVersion checks that an operator-supplied version string is a
// valid PEP 440 version. The patched components are Python
// applications, so anything their own tooling would reject is refused
// at prompt time.
func ValidateVersion(value string) error {
	if _, err := pep440.Parse(strings.TrimSpace(value)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version string: %s", value)).
			WithCause(err)
	}
	return nil
}
