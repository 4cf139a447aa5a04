package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// PatchConstant rewrites the quoted string literal assigned to
// constantName inside content. The assignment may be indented and may
// use either quote character; the original quote character and all
// surrounding syntax are preserved. Exactly one assignment must match.
func PatchConstant(content string, constantName string, newValue string) (string, error) {
	name := strings.TrimSpace(constantName)
	if name == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("constant name is empty")
	}
	if strings.ContainsAny(newValue, "\"'\n") {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("new value must not contain quotes or newlines")
	}
	pattern := regexp.MustCompile(`(?m)^([ \t]*` + regexp.QuoteMeta(name) + `[ \t]*=[ \t]*)("[^"\n]*"|'[^'\n]*')`)
	matches := pattern.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("constant pattern not found: %s", name))
	}
	if len(matches) > 1 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("constant assigned %d times, expected one: %s", len(matches), name))
	}
	patched := pattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := pattern.FindStringSubmatch(match)
		quote := sub[2][:1]
		return sub[1] + quote + newValue + quote
	})
	if patched == content {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("patch produced no change for %s", name))
	}
	return patched, nil
}
