package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/system-sage/internal/config"
	myGRPC "github.com/MKhiriev/system-sage/internal/handler/grpc"
	"github.com/MKhiriev/system-sage/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	watchCtx    context.Context
	cancelWatch context.CancelFunc
	logger      *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	watchCtx, cancel := context.WithCancel(context.Background())
	return &grpcServer{
		handler:     handler,
		address:     cfg.GRPCAddress,
		server:      s,
		watchCtx:    watchCtx,
		cancelWatch: cancel,
		logger:      logger,
	}
}

// RunServer keeps the health status current while serving.
func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Listen")
		return fmt.Errorf("grpc listen: %w", err)
	}

	go g.handler.Watch(g.watchCtx)

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(lis); err != nil {
		g.logger.Error().Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC server Serve")
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.cancelWatch()
	g.server.GracefulStop()
}
