package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lmu-times-deploy/internal/app"
)

type revertOptions struct {
	Spec string
	File string
}

func newRevertCommand() *cobra.Command {
	opts := revertOptions{}
	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Restore .bak backups left by patch and embed-icon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRevert(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "Deploy spec path")
	cmd.Flags().StringVar(&opts.File, "file", "", "Revert a single file instead of the whole recorder component")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	return cmd
}

func runRevert(ctx context.Context, cmd *cobra.Command, opts revertOptions) error {
	service := newAppService()
	result, err := service.Revert(ctx, app.RevertRequest{
		SpecPath: resolveString(cmd, opts.Spec, "spec", "spec"),
		FilePath: opts.File,
	})
	if err != nil {
		return err
	}
	if len(result.Restored) == 0 {
		fmt.Println("nothing to revert")
		return nil
	}
	for _, file := range result.Restored {
		fmt.Printf("restored %s\n", file)
	}
	return nil
}
