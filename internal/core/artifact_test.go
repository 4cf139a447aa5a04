package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArtifactCandidates(t *testing.T) {
	tests := []struct {
		name    string
		appName string
		goos    string
		want    []string
	}{
		{name: "windows", appName: "MyApp", goos: "windows", want: []string{"MyApp.exe", "MyApp"}},
		{name: "linux", appName: "MyApp", goos: "linux", want: []string{"MyApp", "MyApp.exe"}},
		{name: "spaces kept", appName: "LMU Times Recorder", goos: "windows", want: []string{"LMU Times Recorder.exe", "LMU Times Recorder"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ArtifactCandidates(tt.appName, tt.goos)); diff != "" {
				t.Fatalf("unexpected candidates (-want +got):\n%s", diff)
			}
		})
	}
}
