package relayer

import (
	"encoding/json"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
)

// defaultChannelName is the placeholder channel name token, mirroring the
// connection handshake's placeholder.
const defaultChannelName = "default-chan"

// OpenChannelResult is the reply payload of every channel handshake step.
type OpenChannelResult struct {
	ChannelID ibc.ChannelID `json:"channel_id"`
}

func decodeOpenChannel(op string, result json.RawMessage, tag string) (OpenChannelResult, error) {
	payload, err := taggedResult(op, result, tag)
	if err != nil {
		return OpenChannelResult{}, err
	}
	var res OpenChannelResult
	if err := decodeInto(op, payload, &res); err != nil {
		return OpenChannelResult{}, err
	}
	return res, nil
}

// TxChanOpenInit submits the first channel handshake step over an open
// connection. Ordering is optional; when unset it contributes no tokens.
type TxChanOpenInit struct {
	SrcChainID ibc.ChainID
	DstChainID ibc.ChainID
	DstConnID  ibc.ConnectionID
	SrcPortID  ibc.PortID
	DstPortID  ibc.PortID
	Ordering   ibc.Ordering
}

var _ Command[OpenChannelResult] = TxChanOpenInit{}

func (c TxChanOpenInit) Name() string {
	return "tx raw chan-open-init"
}

func (c TxChanOpenInit) Args() []string {
	args := orderingArgs(c.Ordering)
	return append(args,
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstConnID),
		string(c.DstPortID), string(c.SrcPortID),
		defaultChannelName, defaultChannelName,
	)
}

func (c TxChanOpenInit) Decode(result json.RawMessage) (OpenChannelResult, error) {
	return decodeOpenChannel(c.Name(), result, "OpenInitChannel")
}

// TxChanOpenTry submits the second channel handshake step, carrying the
// channel id produced by the INIT step on the counterparty.
type TxChanOpenTry struct {
	SrcChainID ibc.ChainID
	DstChainID ibc.ChainID
	DstConnID  ibc.ConnectionID
	SrcPortID  ibc.PortID
	DstPortID  ibc.PortID
	SrcChanID  ibc.ChannelID
	Ordering   ibc.Ordering
}

var _ Command[OpenChannelResult] = TxChanOpenTry{}

func (c TxChanOpenTry) Name() string {
	return "tx raw chan-open-try"
}

func (c TxChanOpenTry) Args() []string {
	args := orderingArgs(c.Ordering)
	return append(args,
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstConnID),
		string(c.DstPortID), string(c.SrcPortID),
		defaultChannelName, string(c.SrcChanID),
	)
}

func (c TxChanOpenTry) Decode(result json.RawMessage) (OpenChannelResult, error) {
	return decodeOpenChannel(c.Name(), result, "OpenTryChannel")
}

// TxChanOpenAck submits the third channel handshake step, carrying both
// channel ids produced so far.
type TxChanOpenAck struct {
	SrcChainID ibc.ChainID
	DstChainID ibc.ChainID
	DstConnID  ibc.ConnectionID
	SrcPortID  ibc.PortID
	DstPortID  ibc.PortID
	SrcChanID  ibc.ChannelID
	DstChanID  ibc.ChannelID
}

var _ Command[OpenChannelResult] = TxChanOpenAck{}

func (c TxChanOpenAck) Name() string {
	return "tx raw chan-open-ack"
}

func (c TxChanOpenAck) Args() []string {
	return []string{
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstConnID),
		string(c.DstPortID), string(c.SrcPortID),
		string(c.DstChanID), string(c.SrcChanID),
	}
}

func (c TxChanOpenAck) Decode(result json.RawMessage) (OpenChannelResult, error) {
	return decodeOpenChannel(c.Name(), result, "OpenAckChannel")
}

// TxChanOpenConfirm submits the final channel handshake step.
type TxChanOpenConfirm struct {
	SrcChainID ibc.ChainID
	DstChainID ibc.ChainID
	DstConnID  ibc.ConnectionID
	SrcPortID  ibc.PortID
	DstPortID  ibc.PortID
	SrcChanID  ibc.ChannelID
	DstChanID  ibc.ChannelID
}

var _ Command[OpenChannelResult] = TxChanOpenConfirm{}

func (c TxChanOpenConfirm) Name() string {
	return "tx raw chan-open-confirm"
}

func (c TxChanOpenConfirm) Args() []string {
	return []string{
		string(c.DstChainID), string(c.SrcChainID),
		string(c.DstConnID),
		string(c.DstPortID), string(c.SrcPortID),
		string(c.DstChanID), string(c.SrcChanID),
	}
}

func (c TxChanOpenConfirm) Decode(result json.RawMessage) (OpenChannelResult, error) {
	return decodeOpenChannel(c.Name(), result, "OpenConfirmChannel")
}

func orderingArgs(o ibc.Ordering) []string {
	if o == "" {
		return nil
	}
	return []string{"--ordering", string(o)}
}
