package e2e

import (
	"context"

	"go.uber.org/zap"

	"github.com/informalsystems/relayer-e2e/framework/ibc"
	"github.com/informalsystems/relayer-e2e/framework/relayer"
)

// ConnectionHandshake performs the four-step connection handshake between
// side a and side b, returning the connection ids produced by the INIT and
// TRY steps. The ids echoed back by ACK and CONFIRM must match them; a
// mismatch is reported as an error-level diagnostic but does not abort the
// handshake.
func (h *Harness) ConnectionHandshake(
	ctx context.Context,
	sideA, sideB ibc.ChainID,
	clientA, clientB ibc.ClientID,
) (ibc.ConnectionID, ibc.ConnectionID, error) {
	aConn, err := h.connInit(ctx, sideA, sideB, clientA, clientB)
	if err != nil {
		return "", "", err
	}
	h.pause()

	bConn, err := h.connTry(ctx, sideB, sideA, clientB, clientA, aConn)
	if err != nil {
		return "", "", err
	}
	h.pause()

	ackConn, err := h.connAck(ctx, sideA, sideB, clientA, clientB, bConn, aConn)
	if err != nil {
		return "", "", err
	}
	if ackConn != aConn {
		h.logger.Error("unexpected connection id from conn ack",
			zap.String("expected", string(aConn)),
			zap.String("got", string(ackConn)),
		)
	}
	h.pause()

	confirmConn, err := h.connConfirm(ctx, sideB, sideA, clientB, clientA, aConn, bConn)
	if err != nil {
		return "", "", err
	}
	if confirmConn != bConn {
		h.logger.Error("unexpected connection id from conn confirm",
			zap.String("expected", string(bConn)),
			zap.String("got", string(confirmConn)),
		)
	}

	return aConn, bConn, nil
}

func (h *Harness) connInit(ctx context.Context, src, dst ibc.ChainID, srcClient, dstClient ibc.ClientID) (ibc.ConnectionID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxConnInit{
		SrcChainID:  src,
		DstChainID:  dst,
		SrcClientID: srcClient,
		DstClientID: dstClient,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logConnStep("conn init", dst, out.ConnectionID)
	return out.ConnectionID, nil
}

func (h *Harness) connTry(ctx context.Context, src, dst ibc.ChainID, srcClient, dstClient ibc.ClientID, srcConn ibc.ConnectionID) (ibc.ConnectionID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxConnTry{
		SrcChainID:  src,
		DstChainID:  dst,
		SrcClientID: srcClient,
		DstClientID: dstClient,
		SrcConnID:   srcConn,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logConnStep("conn try", dst, out.ConnectionID)
	return out.ConnectionID, nil
}

func (h *Harness) connAck(ctx context.Context, src, dst ibc.ChainID, srcClient, dstClient ibc.ClientID, srcConn, dstConn ibc.ConnectionID) (ibc.ConnectionID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxConnAck{
		SrcChainID:  src,
		DstChainID:  dst,
		SrcClientID: srcClient,
		DstClientID: dstClient,
		SrcConnID:   srcConn,
		DstConnID:   dstConn,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logConnStep("conn ack", dst, out.ConnectionID)
	return out.ConnectionID, nil
}

func (h *Harness) connConfirm(ctx context.Context, src, dst ibc.ChainID, srcClient, dstClient ibc.ClientID, srcConn, dstConn ibc.ConnectionID) (ibc.ConnectionID, error) {
	res, err := relayer.Run(ctx, h.exec, relayer.TxConnConfirm{
		SrcChainID:  src,
		DstChainID:  dst,
		SrcClientID: srcClient,
		DstClientID: dstClient,
		SrcConnID:   srcConn,
		DstConnID:   dstConn,
	})
	if err != nil {
		return "", err
	}
	out, err := res.Success()
	if err != nil {
		return "", err
	}
	h.logConnStep("conn confirm", dst, out.ConnectionID)
	return out.ConnectionID, nil
}

func (h *Harness) logConnStep(step string, dst ibc.ChainID, connID ibc.ConnectionID) {
	h.logger.Info(step+" submitted",
		zap.String("chain_id", string(dst)),
		zap.String("connection_id", string(connID)),
	)
}
