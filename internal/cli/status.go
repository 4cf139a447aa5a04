package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lmu-times-deploy/internal/app"
)

type statusOptions struct {
	Spec string
}

func newStatusCommand() *cobra.Command {
	opts := statusOptions{}
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the patch state of the recorder component",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Deploy spec path")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	return cmd
}

func runStatus(ctx context.Context, cmd *cobra.Command, opts statusOptions) error {
	service := newAppService()
	result, err := service.Status(ctx, app.StatusRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
	})
	if err != nil {
		return err
	}
	for _, target := range result.Targets {
		state := "clean"
		if target.Patched {
			state = "patched"
		}
		fmt.Printf("%s %s: %s\n", target.FilePath, target.ConstantName, state)
	}
	if result.ResourcesFile != "" {
		state := "embedded"
		if result.PlaceholderPresent {
			state = "placeholder present"
		}
		fmt.Printf("%s: %s\n", result.ResourcesFile, state)
	}
	return nil
}
