// clipctl inspects and drives a clip relay from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-clip-relay/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clipctl",
		Short: "Inspect and drive a clip relay",
		Long: `clipctl talks to a clip relay over HTTP.

The relay is taken from --server, or found over mDNS when --server is "auto".

Config file search order (first found wins):
  $HOME/.config/clip-relay/clipctl.toml
  ./clipctl.toml
  path supplied via --config

All flags can be set via CLIPCTL_<FLAG> env vars or config-file keys.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newStatusCmd(),
		newShowCmd(),
		newPushCmd(),
		newPullCmd(),
		newVersionCmd(),
	)

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
			fmt.Fprint(cmd.OutOrStdout(), renderBuildInfo(info))
		},
	}
}
