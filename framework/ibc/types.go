package ibc

import "fmt"

// ChainID identifies a target chain endpoint.
type ChainID string

// ClientID identifies a light client instance on a chain.
type ClientID string

// ConnectionID identifies one end of a connection between two chains.
type ConnectionID string

// ChannelID identifies one end of a channel riding on a connection.
type ChannelID string

// PortID identifies the application port a channel is bound to.
type PortID string

// Ordering is the packet delivery ordering of a channel.
type Ordering string

const (
	OrderingUnordered Ordering = "UNORDERED"
	OrderingOrdered   Ordering = "ORDERED"
)

// Height is a chain position marker identifying a verified state snapshot.
type Height struct {
	RevisionNumber uint64 `json:"revision_number"`
	RevisionHeight uint64 `json:"revision_height"`
}

func (h Height) String() string {
	return fmt.Sprintf("%d-%d", h.RevisionNumber, h.RevisionHeight)
}
