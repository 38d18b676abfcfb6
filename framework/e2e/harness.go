// Package e2e orchestrates an external IBC relayer through the full
// end-to-end sequence: a light-client lifecycle per direction, the
// four-step connection handshake, and optionally the channel handshake.
package e2e

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
	"github.com/informalsystems/relayer-e2e/framework/relayer"
)

const (
	// DefaultChainA and DefaultChainB are the chain identities used when
	// the caller names none.
	DefaultChainA = ibc.ChainID("ibc-0")
	DefaultChainB = ibc.ChainID("ibc-1")

	// DefaultPort is the application port channels bind to by default.
	DefaultPort = ibc.PortID("transfer")

	// DefaultStepDelay throttles back-to-back transactions against the
	// relayer; it is a plain sleep, not a synchronization point.
	DefaultStepDelay = 500 * time.Millisecond
)

// Config configures a Harness run.
type Config struct {
	// ChainA and ChainB are the two chain identities; empty values fall
	// back to the ibc-0/ibc-1 defaults.
	ChainA ibc.ChainID
	ChainB ibc.ChainID

	// StepDelay is the pause inserted after every command; zero falls
	// back to DefaultStepDelay.
	StepDelay time.Duration

	// Channels enables the channel handshake phase after the connection
	// handshake completes.
	Channels bool

	// SrcPort and DstPort are the channel ports; empty values fall back
	// to DefaultPort.
	SrcPort ibc.PortID
	DstPort ibc.PortID

	// Ordering is the channel ordering; empty falls back to unordered.
	Ordering ibc.Ordering
}

// Harness drives the relayer through the fixed command sequence. Every
// command is issued exactly once, strictly sequentially; a run shares no
// state with any other run.
type Harness struct {
	exec   relayer.Executor
	logger *zap.Logger
	cfg    Config
}

// New returns a Harness issuing commands through exec.
func New(logger *zap.Logger, exec relayer.Executor, cfg Config) *Harness {
	if cfg.ChainA == "" {
		cfg.ChainA = DefaultChainA
	}
	if cfg.ChainB == "" {
		cfg.ChainB = DefaultChainB
	}
	if cfg.StepDelay == 0 {
		cfg.StepDelay = DefaultStepDelay
	}
	if cfg.SrcPort == "" {
		cfg.SrcPort = DefaultPort
	}
	if cfg.DstPort == "" {
		cfg.DstPort = DefaultPort
	}
	if cfg.Ordering == "" {
		cfg.Ordering = ibc.OrderingUnordered
	}
	return &Harness{
		exec:   exec,
		logger: logger,
		cfg:    cfg,
	}
}

// Run executes the full sequence: the client lifecycle for each direction,
// then one connection handshake between the resulting clients, then the
// channel handshake when enabled. The first failed command aborts the run.
func (h *Harness) Run(ctx context.Context) error {
	clientA, err := h.SetupClient(ctx, h.cfg.ChainA, h.cfg.ChainB)
	if err != nil {
		return err
	}
	clientB, err := h.SetupClient(ctx, h.cfg.ChainB, h.cfg.ChainA)
	if err != nil {
		return err
	}

	h.pause()

	aConn, bConn, err := h.ConnectionHandshake(ctx, h.cfg.ChainB, h.cfg.ChainA, clientB, clientA)
	if err != nil {
		return err
	}

	if h.cfg.Channels {
		h.pause()
		// aConn was allocated on the INIT destination (ChainA) and bConn
		// on the TRY destination (ChainB); each side of the channel
		// handshake gets the connection end living on its own chain.
		if _, _, err := h.ChannelHandshake(ctx, h.cfg.ChainB, h.cfg.ChainA, bConn, aConn); err != nil {
			return err
		}
	}

	return nil
}

// pause sleeps for the configured inter-step delay, giving the relayer's
// asynchronous propagation time to catch up between transactions.
func (h *Harness) pause() {
	time.Sleep(h.cfg.StepDelay)
}
