package e2e

import (
	"context"

	"go.uber.org/zap"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
	"github.com/informalsystems/relayer-e2e/framework/relayer"
)

// ChannelHandshake performs the four-step channel handshake over the
// connection pair (connA on side a, connB on side b), returning the
// channel ids produced by the INIT and TRY steps. The identifier invariant
// policy mirrors the connection handshake: ACK must echo the INIT id and
// CONFIRM the TRY id, and a mismatch is reported without aborting.
func (h *Harness) ChannelHandshake(
	ctx context.Context,
	sideA, sideB ibc.ChainID,
	connA, connB ibc.ConnectionID,
) (ibc.ChannelID, ibc.ChannelID, error) {
	aChan, err := h.chanOpenInit(ctx, sideA, sideB, connB)
	if err != nil {
		return "", "", err
	}
	h.pause()

	bChan, err := h.chanOpenTry(ctx, sideB, sideA, connA, aChan)
	if err != nil {
		return "", "", err
	}
	h.pause()

	ackChan, err := h.chanOpenAck(ctx, sideA, sideB, connB, bChan, aChan)
	if err != nil {
		return "", "", err
	}
	if ackChan != aChan {
		h.logger.Error("unexpected channel id from chan open ack",
			zap.String("expected", string(aChan)),
			zap.String("got", string(ackChan)),
		)
	}
	h.pause()

	confirmChan, err := h.chanOpenConfirm(ctx, sideB, sideA, connA, aChan, bChan)
	if err != nil {
		return "", "", err
	}
	if confirmChan != bChan {
		h.logger.Error("unexpected channel id from chan open confirm",
			zap.String("expected", string(bChan)),
			zap.String("got", string(confirmChan)),
		)
	}

	return aChan, bChan, nil
}

func (h *Harness) chanOpenInit(ctx context.Context, src, dst ibc.ChainID, dstConn ibc.ConnectionID) (ibc.ChannelID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxChanOpenInit{
		SrcChainID: src,
		DstChainID: dst,
		DstConnID:  dstConn,
		SrcPortID:  h.cfg.SrcPort,
		DstPortID:  h.cfg.DstPort,
		Ordering:   h.cfg.Ordering,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logChanStep("chan open init", dst, out.ChannelID)
	return out.ChannelID, nil
}

func (h *Harness) chanOpenTry(ctx context.Context, src, dst ibc.ChainID, dstConn ibc.ConnectionID, srcChan ibc.ChannelID) (ibc.ChannelID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxChanOpenTry{
		SrcChainID: src,
		DstChainID: dst,
		DstConnID:  dstConn,
		SrcPortID:  h.cfg.SrcPort,
		DstPortID:  h.cfg.DstPort,
		SrcChanID:  srcChan,
		Ordering:   h.cfg.Ordering,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logChanStep("chan open try", dst, out.ChannelID)
	return out.ChannelID, nil
}

func (h *Harness) chanOpenAck(ctx context.Context, src, dst ibc.ChainID, dstConn ibc.ConnectionID, srcChan, dstChan ibc.ChannelID) (ibc.ChannelID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxChanOpenAck{
		SrcChainID: src,
		DstChainID: dst,
		DstConnID:  dstConn,
		SrcPortID:  h.cfg.SrcPort,
		DstPortID:  h.cfg.DstPort,
		SrcChanID:  srcChan,
		DstChanID:  dstChan,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logChanStep("chan open ack", dst, out.ChannelID)
	return out.ChannelID, nil
}

func (h *Harness) chanOpenConfirm(ctx context.Context, src, dst ibc.ChainID, dstConn ibc.ConnectionID, srcChan, dstChan ibc.ChannelID) (ibc.ChannelID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxChanOpenConfirm{
		SrcChainID: src,
		DstChainID: dst,
		DstConnID:  dstConn,
		SrcPortID:  h.cfg.SrcPort,
		DstPortID:  h.cfg.DstPort,
		SrcChanID:  srcChan,
		DstChanID:  dstChan,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logChanStep("chan open confirm", dst, out.ChannelID)
	return out.ChannelID, nil
}

func (h *Harness) logChanStep(step string, dst ibc.ChainID, chanID ibc.ChannelID) {
	h.logger.Info(step+" submitted",
		zap.String("chain_id", string(dst)),
		zap.String("channel_id", string(chanID)),
	)
}
