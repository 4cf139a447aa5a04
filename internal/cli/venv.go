package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lmu-times-deploy/internal/app"
)

type venvOptions struct {
	ProjectDir string
	Python     string
}

func newVenvCommand() *cobra.Command {
	opts := venvOptions{}
	cmd := &cobra.Command{
		Use:   "venv",
		Short: "Create a project virtual environment and install its dependencies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVenv(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ProjectDir, "project", "", "Project directory")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Base Python interpreter")
	_ = cmd.MarkFlagRequired("project")
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	return cmd
}

func runVenv(ctx context.Context, cmd *cobra.Command, opts venvOptions) error {
	service := newAppService()
	result, err := service.Venv(ctx, app.VenvRequest{
		ProjectDir: opts.ProjectDir,
		Python:     resolveString(cmd, opts.Python, "python", "python"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("environment ready: %s\n", result.VenvDir)
	return nil
}
