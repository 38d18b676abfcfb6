package relayer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
)

func TestCommandArgs(t *testing.T) {
	height := uint64(42)

	testCases := []struct {
		name     string
		cmd      interface{ Args() []string }
		wantName string
		wantArgs []string
	}{
		{
			name:     "create client",
			cmd:      TxCreateClient{DstChainID: "ibc-0", SrcChainID: "ibc-1"},
			wantName: "tx raw create-client",
			wantArgs: []string{"ibc-0", "ibc-1"},
		},
		{
			name:     "update client",
			cmd:      TxUpdateClient{DstChainID: "ibc-0", SrcChainID: "ibc-1", DstClientID: "07-tendermint-0"},
			wantName: "tx raw update-client",
			wantArgs: []string{"ibc-0", "ibc-1", "07-tendermint-0"},
		},
		{
			name:     "query client state without options",
			cmd:      QueryClientState{ChainID: "ibc-0", ClientID: "07-tendermint-0"},
			wantName: "query client state",
			wantArgs: []string{"ibc-0", "07-tendermint-0"},
		},
		{
			name:     "query client state with height",
			cmd:      QueryClientState{ChainID: "ibc-0", ClientID: "07-tendermint-0", Height: &height},
			wantName: "query client state",
			wantArgs: []string{"--height", "42", "ibc-0", "07-tendermint-0"},
		},
		{
			name:     "query client state with proof",
			cmd:      QueryClientState{ChainID: "ibc-0", ClientID: "07-tendermint-0", Proof: true},
			wantName: "query client state",
			wantArgs: []string{"--proof", "ibc-0", "07-tendermint-0"},
		},
		{
			name: "conn init uses placeholder names",
			cmd: TxConnInit{
				SrcChainID: "ibc-1", DstChainID: "ibc-0",
				SrcClientID: "07-tendermint-1", DstClientID: "07-tendermint-0",
			},
			wantName: "tx raw conn-init",
			wantArgs: []string{
				"ibc-0", "ibc-1",
				"07-tendermint-0", "07-tendermint-1",
				"default-conn", "default-conn",
			},
		},
		{
			name: "conn try carries the init connection id",
			cmd: TxConnTry{
				SrcChainID: "ibc-0", DstChainID: "ibc-1",
				SrcClientID: "07-tendermint-0", DstClientID: "07-tendermint-1",
				SrcConnID: "connection-0",
			},
			wantName: "tx raw conn-try",
			wantArgs: []string{
				"ibc-1", "ibc-0",
				"07-tendermint-1", "07-tendermint-0",
				"default-conn", "connection-0",
			},
		},
		{
			name: "conn ack carries both connection ids",
			cmd: TxConnAck{
				SrcChainID: "ibc-1", DstChainID: "ibc-0",
				SrcClientID: "07-tendermint-1", DstClientID: "07-tendermint-0",
				SrcConnID: "connection-1", DstConnID: "connection-0",
			},
			wantName: "tx raw conn-ack",
			wantArgs: []string{
				"ibc-0", "ibc-1",
				"07-tendermint-0", "07-tendermint-1",
				"connection-0", "connection-1",
			},
		},
		{
			name: "conn confirm carries both connection ids",
			cmd: TxConnConfirm{
				SrcChainID: "ibc-0", DstChainID: "ibc-1",
				SrcClientID: "07-tendermint-0", DstClientID: "07-tendermint-1",
				SrcConnID: "connection-0", DstConnID: "connection-1",
			},
			wantName: "tx raw conn-confirm",
			wantArgs: []string{
				"ibc-1", "ibc-0",
				"07-tendermint-1", "07-tendermint-0",
				"connection-1", "connection-0",
			},
		},
		{
			name: "chan open init with ordering",
			cmd: TxChanOpenInit{
				SrcChainID: "ibc-1", DstChainID: "ibc-0",
				DstConnID: "connection-0",
				SrcPortID: "transfer", DstPortID: "transfer",
				Ordering: ibc.OrderingUnordered,
			},
			wantName: "tx raw chan-open-init",
			wantArgs: []string{
				"--ordering", "UNORDERED",
				"ibc-0", "ibc-1",
				"connection-0",
				"transfer", "transfer",
				"default-chan", "default-chan",
			},
		},
		{
			name: "chan open init omits unset ordering",
			cmd: TxChanOpenInit{
				SrcChainID: "ibc-1", DstChainID: "ibc-0",
				DstConnID: "connection-0",
				SrcPortID: "transfer", DstPortID: "transfer",
			},
			wantName: "tx raw chan-open-init",
			wantArgs: []string{
				"ibc-0", "ibc-1",
				"connection-0",
				"transfer", "transfer",
				"default-chan", "default-chan",
			},
		},
		{
			name: "chan open try carries the init channel id",
			cmd: TxChanOpenTry{
				SrcChainID: "ibc-0", DstChainID: "ibc-1",
				DstConnID: "connection-1",
				SrcPortID: "transfer", DstPortID: "transfer",
				SrcChanID: "channel-0",
				Ordering:  ibc.OrderingOrdered,
			},
			wantName: "tx raw chan-open-try",
			wantArgs: []string{
				"--ordering", "ORDERED",
				"ibc-1", "ibc-0",
				"connection-1",
				"transfer", "transfer",
				"default-chan", "channel-0",
			},
		},
		{
			name: "chan open ack carries both channel ids",
			cmd: TxChanOpenAck{
				SrcChainID: "ibc-1", DstChainID: "ibc-0",
				DstConnID: "connection-0",
				SrcPortID: "transfer", DstPortID: "transfer",
				SrcChanID: "channel-1", DstChanID: "channel-0",
			},
			wantName: "tx raw chan-open-ack",
			wantArgs: []string{
				"ibc-0", "ibc-1",
				"connection-0",
				"transfer", "transfer",
				"channel-0", "channel-1",
			},
		},
		{
			name: "chan open confirm carries both channel ids",
			cmd: TxChanOpenConfirm{
				SrcChainID: "ibc-0", DstChainID: "ibc-1",
				DstConnID: "connection-1",
				SrcPortID: "transfer", DstPortID: "transfer",
				SrcChanID: "channel-0", DstChanID: "channel-1",
			},
			wantName: "tx raw chan-open-confirm",
			wantArgs: []string{
				"ibc-1", "ibc-0",
				"connection-1",
				"transfer", "transfer",
				"channel-1", "channel-0",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			named, ok := tc.cmd.(interface{ Name() string })
			require.True(t, ok)
			require.Equal(t, tc.wantName, named.Name())

			args := tc.cmd.Args()
			require.Equal(t, tc.wantArgs, args)
			for _, arg := range args {
				require.NotEmpty(t, arg, "argument tokens must never be empty")
			}
		})
	}
}
