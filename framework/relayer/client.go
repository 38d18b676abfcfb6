package relayer

import (
	"encoding/json"
	"strconv"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
)

// TxCreateClient creates a light client of the source chain on the
// destination chain.
type TxCreateClient struct {
	DstChainID ibc.ChainID
	SrcChainID ibc.ChainID
}

// CreateClientResult is the reply payload of TxCreateClient.
type CreateClientResult struct {
	ClientID ibc.ClientID `json:"client_id"`
}

var _ Command[CreateClientResult] = TxCreateClient{}

func (c TxCreateClient) Name() string {
	return "tx raw create-client"
}

func (c TxCreateClient) Args() []string {
	return []string{string(c.DstChainID), string(c.SrcChainID)}
}

func (c TxCreateClient) Decode(result json.RawMessage) (CreateClientResult, error) {
	payload, err := taggedResult(c.Name(), result, "CreateClient")
	if err != nil {
		return CreateClientResult{}, err
	}
	var res CreateClientResult
	if err := decodeInto(c.Name(), payload, &res); err != nil {
		return CreateClientResult{}, err
	}
	return res, nil
}

// TxUpdateClient updates an existing light client on the destination chain
// with the source chain's latest consensus state.
type TxUpdateClient struct {
	DstChainID  ibc.ChainID
	SrcChainID  ibc.ChainID
	DstClientID ibc.ClientID
}

// UpdateClientResult is the reply payload of TxUpdateClient.
type UpdateClientResult struct {
	ConsensusHeight ibc.Height `json:"consensus_height"`
}

var _ Command[UpdateClientResult] = TxUpdateClient{}

func (c TxUpdateClient) Name() string {
	return "tx raw update-client"
}

func (c TxUpdateClient) Args() []string {
	return []string{string(c.DstChainID), string(c.SrcChainID), string(c.DstClientID)}
}

func (c TxUpdateClient) Decode(result json.RawMessage) (UpdateClientResult, error) {
	payload, err := taggedResult(c.Name(), result, "UpdateClient")
	if err != nil {
		return UpdateClientResult{}, err
	}
	var res UpdateClientResult
	if err := decodeInto(c.Name(), payload, &res); err != nil {
		return UpdateClientResult{}, err
	}
	return res, nil
}

// QueryClientState queries the state of a light client on a chain. Height
// and Proof are optional; when absent they contribute no argument tokens.
type QueryClientState struct {
	ChainID  ibc.ChainID
	ClientID ibc.ClientID
	Height   *uint64
	Proof    bool
}

// QueryClientStateResult is the reply payload of QueryClientState.
type QueryClientStateResult struct {
	LatestHeight ibc.Height `json:"latest_height"`
}

var _ Command[QueryClientStateResult] = QueryClientState{}

func (q QueryClientState) Name() string {
	return "query client state"
}

func (q QueryClientState) Args() []string {
	var args []string
	if q.Height != nil {
		args = append(args, "--height", strconv.FormatUint(*q.Height, 10))
	}
	if q.Proof {
		args = append(args, "--proof")
	}
	return append(args, string(q.ChainID), string(q.ClientID))
}

func (q QueryClientState) Decode(result json.RawMessage) (QueryClientStateResult, error) {
	payload, err := flatResult(q.Name(), result)
	if err != nil {
		return QueryClientStateResult{}, err
	}
	var res QueryClientStateResult
	if err := decodeInto(q.Name(), payload, &res); err != nil {
		return QueryClientStateResult{}, err
	}
	return res, nil
}
