package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPatchConstantDoubleQuoted(t *testing.T) {
	content := "# header\nBASE_URL = \"http://old\"\nTIMEOUT = 5\n"
	patched, err := PatchConstant(content, "BASE_URL", "http://new:9000")
	require.NoError(t, err)
	want := "# header\nBASE_URL = \"http://new:9000\"\nTIMEOUT = 5\n"
	if diff := cmp.Diff(want, patched); diff != "" {
		t.Fatalf("unexpected patched content (-want +got):\n%s", diff)
	}
}

func TestPatchConstantPreservesSingleQuotes(t *testing.T) {
	content := "APP_NAME = 'Old Name'\n"
	patched, err := PatchConstant(content, "APP_NAME", "New Name")
	require.NoError(t, err)
	if diff := cmp.Diff("APP_NAME = 'New Name'\n", patched); diff != "" {
		t.Fatalf("unexpected patched content (-want +got):\n%s", diff)
	}
}

func TestPatchConstantPreservesIndentAndSpacing(t *testing.T) {
	content := "class Config:\n    __version__=\"0.0.0\"\n"
	patched, err := PatchConstant(content, "__version__", "1.2.3")
	require.NoError(t, err)
	if diff := cmp.Diff("class Config:\n    __version__=\"1.2.3\"\n", patched); diff != "" {
		t.Fatalf("unexpected patched content (-want +got):\n%s", diff)
	}
}

func TestPatchConstantLeavesOtherLinesAlone(t *testing.T) {
	content := "A = \"1\"\nB = \"2\"\nC = \"3\"\n"
	patched, err := PatchConstant(content, "B", "two")
	require.NoError(t, err)
	if diff := cmp.Diff("A = \"1\"\nB = \"two\"\nC = \"3\"\n", patched); diff != "" {
		t.Fatalf("unexpected patched content (-want +got):\n%s", diff)
	}
}

func TestPatchConstantNotFound(t *testing.T) {
	_, err := PatchConstant("OTHER = \"x\"\n", "BASE_URL", "http://new")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestPatchConstantIgnoresSuffixedNames(t *testing.T) {
	// BASE_URL_FALLBACK must not match a BASE_URL patch, and a
	// mid-line mention must not match either.
	_, err := PatchConstant("BASE_URL_FALLBACK = \"x\"\nother = BASE_URL\n", "BASE_URL", "y")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestPatchConstantRejectsDuplicateAssignments(t *testing.T) {
	content := "BASE_URL = \"a\"\nBASE_URL = \"b\"\n"
	_, err := PatchConstant(content, "BASE_URL", "c")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestPatchConstantRejectsNoOp(t *testing.T) {
	_, err := PatchConstant("BASE_URL = \"same\"\n", "BASE_URL", "same")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestPatchConstantRejectsQuotesInValue(t *testing.T) {
	_, err := PatchConstant("X = \"a\"\n", "X", "bad\"value")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestPatchConstantEmptyName(t *testing.T) {
	_, err := PatchConstant("X = \"a\"\n", " ", "b")
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
