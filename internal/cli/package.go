package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lmu-times-deploy/internal/app"
)

type packageOptions struct {
	ProjectDir string
	EntryPoint string
	AppName    string
	Icon       string
	OutputDir  string
}

func newPackageCommand() *cobra.Command {
	opts := packageOptions{}
	cmd := &cobra.Command{
		Use:   "package",
		Short: "Run the packager and relocate the produced executable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackage(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ProjectDir, "project", "", "Project directory")
	cmd.Flags().StringVar(&opts.EntryPoint, "entry", "main.py", "Entry point file, relative to the project directory")
	cmd.Flags().StringVar(&opts.AppName, "name", "", "Output application name")
	cmd.Flags().StringVar(&opts.Icon, "icon", "", "Icon file, relative to the project directory")
	cmd.Flags().StringVar(&opts.OutputDir, "output", "", "Canonical output directory for the artifact")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("name")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runPackage(ctx context.Context, cmd *cobra.Command, opts packageOptions) error {
	service := newAppService()
	result, err := service.Package(ctx, app.PackageRequest{
		ProjectDir: opts.ProjectDir,
		EntryPoint: opts.EntryPoint,
		AppName:    opts.AppName,
		IconPath:   opts.Icon,
		OutputDir:  resolveString(cmd, opts.OutputDir, "output", "output"),
	})
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Println("build finished but no artifact matched the expected name")
		return nil
	}
	fmt.Printf("artifact: %s\n", result.ArtifactPath)
	return nil
}
