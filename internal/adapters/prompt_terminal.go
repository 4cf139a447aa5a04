package adapters

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"lmu-times-deploy/internal/ports"
)

// PrompterAdapter reads line-oriented answers from In and writes
// prompts to Out. Defaults are shown in brackets; an empty answer
// accepts the default, and fields without a default re-prompt until a
// non-empty answer arrives.
type PrompterAdapter struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompterAdapter(in io.Reader, out io.Writer) *PrompterAdapter {
	return &PrompterAdapter{reader: bufio.NewReader(in), out: out}
}

func (a *PrompterAdapter) Ask(label string, defaultValue string) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(a.out, "%s [%s]: ", label, defaultValue)
		} else {
			fmt.Fprintf(a.out, "%s: ", label)
		}
		answer, err := a.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			if defaultValue != "" {
				return defaultValue, nil
			}
			fmt.Fprintf(a.out, "a value is required\n")
			continue
		}
		return answer, nil
	}
}

func (a *PrompterAdapter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(a.out, "%s [y/N]: ", question)
		answer, err := a.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		fmt.Fprintf(a.out, "please answer yes or no\n")
	}
}

func (a *PrompterAdapter) readLine() (string, error) {
	line, err := a.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("prompt input closed").
			WithCause(err)
	}
	return strings.TrimSpace(line), nil
}

var _ ports.PrompterPort = (*PrompterAdapter)(nil)
