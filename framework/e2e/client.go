package e2e

import (
	"context"

	"go.uber.org/zap"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
	"github.com/informalsystems/relayer-e2e/framework/relayer"
)

// SetupClient runs the light-client lifecycle for one direction: create
// the client on dst tracking src, probe its state, update it, probe again.
// The queries are purely observational; no step consumes their heights.
func (h *Harness) SetupClient(ctx context.Context, dst, src ibc.ChainID) (ibc.ClientID, error) {
	clientID, err := h.createClient(ctx, dst, src)
	if err != nil {
		return "", err
	}
	h.pause()

	if _, err := h.queryClientState(ctx, dst, clientID); err != nil {
		return "", err
	}
	h.pause()

	if _, err := h.updateClient(ctx, dst, src, clientID); err != nil {
		return "", err
	}
	h.pause()

	if _, err := h.queryClientState(ctx, dst, clientID); err != nil {
		return "", err
	}
	h.pause()

	return clientID, nil
}

func (h *Harness) createClient(ctx context.Context, dst, src ibc.ChainID) (ibc.ClientID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxCreateClient{
		DstChainID: dst,
		SrcChainID: src,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logger.Info("created client",
		zap.String("chain_id", string(dst)),
		zap.String("client_id", string(out.ClientID)),
	)
	return out.ClientID, nil
}

func (h *Harness) updateClient(ctx context.Context, dst, src ibc.ChainID, clientID ibc.ClientID) (ibc.Height, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxUpdateClient{
		DstChainID:  dst,
		SrcChainID:  src,
		DstClientID: clientID,
	})
	if err != nil {
		return ibc.Height{}, err
	}
	out, err := res.Success()
	if err != nil {
		return ibc.Height{}, err
	}
	h.logger.Info("updated client",
		zap.String("chain_id", string(dst)),
		zap.String("client_id", string(clientID)),
		zap.Stringer("consensus_height", out.ConsensusHeight),
	)
	return out.ConsensusHeight, nil
}

func (h *Harness) queryClientState(ctx context.Context, chainID ibc.ChainID, clientID ibc.ClientID) (ibc.Height, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.QueryClientState{
		ChainID:  chainID,
		ClientID: clientID,
	})
	if err != nil {
		return ibc.Height{}, err
	}
	out, err := res.Success()
	if err != nil {
		return ibc.Height{}, err
	}
	h.logger.Info("client is at",
		zap.String("chain_id", string(chainID)),
		zap.String("client_id", string(clientID)),
		zap.Stringer("latest_height", out.LatestHeight),
	)
	return out.LatestHeight, nil
}
