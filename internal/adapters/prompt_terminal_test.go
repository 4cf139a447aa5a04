package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrompterAdapterAcceptsDefault(t *testing.T) {
	var out strings.Builder
	prompter := NewPrompterAdapter(strings.NewReader("\n"), &out)

	value, err := prompter.Ask("Backend URL", "http://localhost:8000")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8000", value)
	require.Contains(t, out.String(), "Backend URL [http://localhost:8000]: ")
}

func TestPrompterAdapterOverridesDefault(t *testing.T) {
	var out strings.Builder
	prompter := NewPrompterAdapter(strings.NewReader("http://api.example.com\n"), &out)

	value, err := prompter.Ask("Backend URL", "http://localhost:8000")
	require.NoError(t, err)
	require.Equal(t, "http://api.example.com", value)
}

func TestPrompterAdapterLoopsUntilNonEmpty(t *testing.T) {
	var out strings.Builder
	prompter := NewPrompterAdapter(strings.NewReader("\n\ntoken-value\n"), &out)

	value, err := prompter.Ask("Bot token", "")
	require.NoError(t, err)
	require.Equal(t, "token-value", value)
	require.Contains(t, out.String(), "a value is required")
}

func TestPrompterAdapterFailsOnClosedInput(t *testing.T) {
	var out strings.Builder
	prompter := NewPrompterAdapter(strings.NewReader(""), &out)

	_, err := prompter.Ask("Bot token", "")
	require.Error(t, err)
}

func TestPrompterAdapterConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "YES\n", want: true},
		{input: "n\n", want: false},
		{input: "no\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\nyes\n", want: true},
	}
	for _, tt := range tests {
		var out strings.Builder
		prompter := NewPrompterAdapter(strings.NewReader(tt.input), &out)
		got, err := prompter.Confirm("overwrite?")
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
