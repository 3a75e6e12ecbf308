package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show relay status",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runStatus(cmd, v) },
	}

	addRelayFlags(cmd)
	cmd.Flags().Bool("json", false, "output raw JSON")

	return cmd
}

func runStatus(cmd *cobra.Command, v *viper.Viper) error {
	ctx := cmd.Context()
	relay, err := newRelay(ctx, v, commandLogger(v))
	if err != nil {
		return err
	}

	status, err := relay.Status(ctx)
	if err != nil {
		return fmt.Errorf("status: %w", err)
	}

	out := cmd.OutOrStdout()
	if v.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	fmt.Fprint(out, renderStatus(relay.BaseURL(), status))
	return nil
}
