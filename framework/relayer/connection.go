package relayer

import (
	"encoding/json"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
)

// defaultConnectionName is the placeholder connection name token the
// handshake steps pass instead of caller-supplied names; the relayer
// allocates the real identifiers.
const defaultConnectionName = "default-conn"

// OpenConnectionResult is the reply payload of every connection handshake
// step: the connection id allocated or echoed by the destination chain.
type OpenConnectionResult struct {
	ConnectionID ibc.ConnectionID `json:"connection_id"`
}

func decodeOpenConnection(op string, result json.RawMessage, tag string) (OpenConnectionResult, error) {
	payload, err := taggedResult(op, result, tag)
	if err != nil {
		return OpenConnectionResult{}, err
	}
	var res OpenConnectionResult
	if err := decodeInto(op, payload, &res); err != nil {
		return OpenConnectionResult{}, err
	}
	return res, nil
}

// TxConnInit submits the first connection handshake step to the
// destination chain.
type TxConnInit struct {
	SrcChainID  ibc.ChainID
	DstChainID  ibc.ChainID
	SrcClientID ibc.ClientID
	DstClientID ibc.ClientID
}

var _ Command[OpenConnectionResult] = TxConnInit{}

func (c TxConnInit) Name() string {
	return "tx raw conn-init"
}

func (c TxConnInit) Args() []string {
	return []string{
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstClientID), string(c.SrcClientID),
		defaultConnectionName, defaultConnectionName,
	}
}

func (c TxConnInit) Decode(result json.RawMessage) (OpenConnectionResult, error) {
	return decodeOpenConnection(c.Name(), result, "OpenInitConnection")
}

// TxConnTry submits the second connection handshake step, carrying the
// connection id produced by the INIT step on the counterparty.
type TxConnTry struct {
	SrcChainID  ibc.ChainID
	DstChainID  ibc.ChainID
	SrcClientID ibc.ClientID
	DstClientID ibc.ClientID
	SrcConnID   ibc.ConnectionID
}

var _ Command[OpenConnectionResult] = TxConnTry{}

func (c TxConnTry) Name() string {
	return "tx raw conn-try"
}

func (c TxConnTry) Args() []string {
	return []string{
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstClientID), string(c.SrcClientID),
		defaultConnectionName, string(c.SrcConnID),
	}
}

func (c TxConnTry) Decode(result json.RawMessage) (OpenConnectionResult, error) {
	return decodeOpenConnection(c.Name(), result, "OpenTryConnection")
}

// TxConnAck submits the third connection handshake step, carrying both
// connection ids produced so far.
type TxConnAck struct {
	SrcChainID  ibc.ChainID
	DstChainID  ibc.ChainID
	SrcClientID ibc.ClientID
	DstClientID ibc.ClientID
	SrcConnID   ibc.ConnectionID
	DstConnID   ibc.ConnectionID
}

var _ Command[OpenConnectionResult] = TxConnAck{}

func (c TxConnAck) Name() string {
	return "tx raw conn-ack"
}

func (c TxConnAck) Args() []string {
	return []string{
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstClientID), string(c.SrcClientID),
		string(c.DstConnID), string(c.SrcConnID),
	}
}

func (c TxConnAck) Decode(result json.RawMessage) (OpenConnectionResult, error) {
	return decodeOpenConnection(c.Name(), result, "OpenAckConnection")
}

// TxConnConfirm submits the final connection handshake step.
type TxConnConfirm struct {
	SrcChainID  ibc.ChainID
	DstChainID  ibc.ChainID
	SrcClientID ibc.ClientID
	DstClientID ibc.ClientID
	SrcConnID   ibc.ConnectionID
	DstConnID   ibc.ConnectionID
}

var _ Command[OpenConnectionResult] = TxConnConfirm{}

func (c TxConnConfirm) Name() string {
	return "tx raw conn-confirm"
}

func (c TxConnConfirm) Args() []string {
	return []string{
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstClientID), string(c.SrcClientID),
		string(c.DstConnID), string(c.SrcConnID),
	}
}

func (c TxConnConfirm) Decode(result json.RawMessage) (OpenConnectionResult, error) {
	return decodeOpenConnection(c.Name(), result, "OpenConfirmConnection")
}
