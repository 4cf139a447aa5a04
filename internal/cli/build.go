package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lmu-times-deploy/internal/app"
)

type buildOptions struct {
	Spec      string
	OutputDir string
	Python    string
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run the full recorder pipeline: prompt, patch, embed, venv, package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Deploy spec path")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Canonical output directory for the artifact")
	cmd.Flags().StringVar(&opts.Python, "python", "", "Base Python interpreter")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("python", cmd.Flags().Lookup("python"))
	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		SpecPath:  resolveString(cmd, opts.Spec, "spec", "spec"),
		OutputDir: resolveString(cmd, opts.OutputDir, "output", "output"),
		Python:    resolveString(cmd, opts.Python, "python", "python"),
	})
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Printf("%s built, but no artifact matched the expected name\n", result.AppName)
		return nil
	}
	fmt.Printf("built %s: %s\n", result.AppName, result.ArtifactPath)
	return nil
}
