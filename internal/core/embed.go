package core

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// EmbedPayload substitutes the single occurrence of token in content
// with the base64 encoding of payload. A missing token means the file
// was already embedded or never templated; the workflow refuses to
// guess which. The post-substitution check guards against an encoded
// payload that itself contains the token.
func EmbedPayload(content string, token string, payload []byte) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("placeholder token is empty")
	}
	occurrences := strings.Count(content, token)
	if occurrences == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("placeholder not found: %s", token))
	}
	if occurrences > 1 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("placeholder occurs %d times, expected one: %s", occurrences, token))
	}
	patched := strings.Replace(content, token, base64.StdEncoding.EncodeToString(payload), 1)
	if strings.Contains(patched, token) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("placeholder still present after substitution: %s", token))
	}
	return patched, nil
}
