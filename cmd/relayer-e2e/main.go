// relayer-e2e drives an external IBC relayer through client creation,
// client update, and the connection handshake between two chains, checking
// that the identifiers returned at each step are consistent.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/informalsystems/relayer-e2e/framework/e2e"
	"github.com/informalsystems/relayer-e2e/framework/ibc"
	"github.com/informalsystems/relayer-e2e/framework/relayer"
)

const defaultLauncher = "cargo run --bin relayer --"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		chainA     string
		chainB     string
		launcher   string
		stepDelay  time.Duration
		channels   bool
		ordering   string
		srcPort    string
		dstPort    string
	)

	cmd := &cobra.Command{
		Use:          "relayer-e2e",
		Short:        "Test all relayer commands, end-to-end",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(configPath); err != nil {
				return fmt.Errorf("supplied configuration file does not exist: %s", configPath)
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			a, b := ibc.ChainID(chainA), ibc.ChainID(chainB)
			if a == "" || b == "" {
				// Discover missing chain identities from the relayer's own
				// configuration; explicitly supplied flags stay untouched.
				da, db, err := relayer.LoadChainIDs(configPath)
				if err != nil {
					logger.Warn("could not discover chain ids from relayer config, using defaults",
						zap.Error(err))
				} else {
					if a == "" {
						a = da
					}
					if b == "" {
						b = db
					}
				}
			}

			bin := relayer.NewBinary(logger, strings.Fields(launcher), configPath)
			h := e2e.New(logger, bin, e2e.Config{
				ChainA:    a,
				ChainB:    b,
				StepDelay: stepDelay,
				Channels:  channels,
				SrcPort:   ibc.PortID(srcPort),
				DstPort:   ibc.PortID(dstPort),
				Ordering:  ibc.Ordering(ordering),
			})
			return h.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file for the relayer")
	cmd.Flags().StringVar(&chainA, "chain-a", "", "first chain id (discovered from the relayer config when empty)")
	cmd.Flags().StringVar(&chainB, "chain-b", "", "second chain id (discovered from the relayer config when empty)")
	cmd.Flags().StringVar(&launcher, "relayer-bin", defaultLauncher, "command used to launch the relayer")
	cmd.Flags().DurationVar(&stepDelay, "delay", e2e.DefaultStepDelay, "pause inserted between commands")
	cmd.Flags().BoolVar(&channels, "channels", false, "also run the channel handshake")
	cmd.Flags().StringVar(&ordering, "ordering", string(ibc.OrderingUnordered), "channel ordering")
	cmd.Flags().StringVar(&srcPort, "src-port", string(e2e.DefaultPort), "source channel port")
	cmd.Flags().StringVar(&dstPort, "dst-port", string(e2e.DefaultPort), "destination channel port")

	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}

	return cmd
}
