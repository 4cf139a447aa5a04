package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lmu-times-deploy/internal/app"
)

type patchOptions struct {
	File     string
	Constant string
	Value    string
}

func newPatchCommand() *cobra.Command {
	opts := patchOptions{}
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Rewrite a quoted constant inside a source file, keeping a backup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPatch(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.File, "file", "", "Target source file")
	cmd.Flags().StringVar(&opts.Constant, "constant", "", "Constant name to patch")
	cmd.Flags().StringVar(&opts.Value, "value", "", "New literal value")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("constant")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func runPatch(ctx context.Context, opts patchOptions) error {
	service := newAppService()
	result, err := service.Patch(ctx, app.PatchRequest{
		FilePath: opts.File,
		Constant: opts.Constant,
		Value:    opts.Value,
	})
	if err != nil {
		return err
	}
	fmt.Printf("patched %s (backup: %s)\n", opts.File, result.BackupPath)
	return nil
}
