package relayer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
)

func TestResultSuccess(t *testing.T) {
	cmd := TxCreateClient{DstChainID: "ibc-0", SrcChainID: "ibc-1"}

	t.Run("success status decodes the payload", func(t *testing.T) {
		res := NewResult[CreateClientResult](cmd, Reply{
			Status: "success",
			Result: json.RawMessage(`[{"CreateClient": {"client_id": "07-tendermint-3"}}]`),
		})
		out, err := res.Success()
		require.NoError(t, err)
		require.Equal(t, ibc.ClientID("07-tendermint-3"), out.ClientID)

		// unwrapping is idempotent
		again, err := res.Success()
		require.NoError(t, err)
		require.Equal(t, out, again)
	})

	t.Run("other status yields ExpectedSuccessError", func(t *testing.T) {
		res := NewResult[CreateClientResult](cmd, Reply{
			Status: "error",
			Result: json.RawMessage(`{"msg": "boom"}`),
		})
		_, err := res.Success()
		var esErr *ExpectedSuccessError
		require.ErrorAs(t, err, &esErr)
		require.Equal(t, "tx raw create-client", esErr.Op)
		require.Equal(t, "error", esErr.Status)
		require.JSONEq(t, `{"msg": "boom"}`, string(esErr.Result))
	})

	t.Run("missing status reads as unknown", func(t *testing.T) {
		res := NewResult[CreateClientResult](cmd, Reply{
			Result: json.RawMessage(`[{"CreateClient": {"client_id": "07-tendermint-3"}}]`),
		})
		_, err := res.Success()
		var esErr *ExpectedSuccessError
		require.ErrorAs(t, err, &esErr)
		require.Equal(t, "unknown", esErr.Status)
	})

	t.Run("missing result defaults to an empty structure", func(t *testing.T) {
		res := NewResult[CreateClientResult](cmd, Reply{Status: "error"})
		_, err := res.Success()
		var esErr *ExpectedSuccessError
		require.ErrorAs(t, err, &esErr)
		require.JSONEq(t, `{}`, string(esErr.Result))
	})
}

func TestDecode(t *testing.T) {
	t.Run("update client reconstructs the consensus height", func(t *testing.T) {
		cmd := TxUpdateClient{DstChainID: "ibc-0", SrcChainID: "ibc-1", DstClientID: "07-tendermint-0"}
		out, err := cmd.Decode(json.RawMessage(
			`[{"UpdateClient": {"consensus_height": {"revision_number": 1, "revision_height": 37}}}]`,
		))
		require.NoError(t, err)
		require.Equal(t, ibc.Height{RevisionNumber: 1, RevisionHeight: 37}, out.ConsensusHeight)
	})

	t.Run("query client state decodes the flat result", func(t *testing.T) {
		cmd := QueryClientState{ChainID: "ibc-0", ClientID: "07-tendermint-0"}
		out, err := cmd.Decode(json.RawMessage(
			`[{"latest_height": {"revision_number": 0, "revision_height": 12}}]`,
		))
		require.NoError(t, err)
		require.Equal(t, ibc.Height{RevisionNumber: 0, RevisionHeight: 12}, out.LatestHeight)
	})

	t.Run("connection steps extract their own tags", func(t *testing.T) {
		testCases := []struct {
			tag string
			cmd Command[OpenConnectionResult]
		}{
			{"OpenInitConnection", TxConnInit{}},
			{"OpenTryConnection", TxConnTry{}},
			{"OpenAckConnection", TxConnAck{}},
			{"OpenConfirmConnection", TxConnConfirm{}},
		}
		for _, tc := range testCases {
			out, err := tc.cmd.Decode(json.RawMessage(
				`[{"` + tc.tag + `": {"connection_id": "connection-5"}}]`,
			))
			require.NoError(t, err, tc.tag)
			require.Equal(t, ibc.ConnectionID("connection-5"), out.ConnectionID, tc.tag)
		}
	})

	t.Run("channel steps extract their own tags", func(t *testing.T) {
		testCases := []struct {
			tag string
			cmd Command[OpenChannelResult]
		}{
			{"OpenInitChannel", TxChanOpenInit{}},
			{"OpenTryChannel", TxChanOpenTry{}},
			{"OpenAckChannel", TxChanOpenAck{}},
			{"OpenConfirmChannel", TxChanOpenConfirm{}},
		}
		for _, tc := range testCases {
			out, err := tc.cmd.Decode(json.RawMessage(
				`[{"` + tc.tag + `": {"channel_id": "channel-2"}}]`,
			))
			require.NoError(t, err, tc.tag)
			require.Equal(t, ibc.ChannelID("channel-2"), out.ChannelID, tc.tag)
		}
	})

	t.Run("missing tag is a DecodeError", func(t *testing.T) {
		cmd := TxCreateClient{DstChainID: "ibc-0", SrcChainID: "ibc-1"}
		_, err := cmd.Decode(json.RawMessage(`[{"UpdateClient": {}}]`))
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		require.Equal(t, "tx raw create-client", decErr.Op)
	})

	t.Run("non-array payload is a DecodeError", func(t *testing.T) {
		cmd := QueryClientState{ChainID: "ibc-0", ClientID: "07-tendermint-0"}
		_, err := cmd.Decode(json.RawMessage(`{"latest_height": {}}`))
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
	})

	t.Run("empty result array is a DecodeError", func(t *testing.T) {
		cmd := TxConnInit{}
		_, err := cmd.Decode(json.RawMessage(`[]`))
		var decErr *DecodeError
		require.True(t, errors.As(err, &decErr))
	})
}
