package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/community-portal/internal/portal"
)

func New(logger *slog.Logger, manager *portal.Manager) *zenrpc.Server {
	rpcService := NewPortalService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("portal", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "community-portal", nil))

	return rpcServer
}
