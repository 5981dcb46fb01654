package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	api "github.com/oshokin/person-profile/internal/api/grpc/person"
	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/logger"
)

// Options controls the person-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// Ready, when set, receives the bound address once the server listens.
	Ready func(addr net.Addr)
	// Now returns the wall-clock time; time.Now when nil.
	Now func() time.Time
}

// Run starts the gRPC server and blocks until context is canceled or server stops.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "person-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	listenAddress, err := resolveListenAddress(settings.Address(), opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	requestLevel, _ := logger.ParseLogLevel(settings.RequestLogLevel)
	requestLogger := logger.Derive(logger.FromContext(ctx).Named("request"), requestLevel)

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(requestLogging(requestLogger)))
	svc := newService(func() int { return settings.Year(now()) })
	api.RegisterPersonServiceServer(grpcServer, api.NewServer(svc))

	logger.InfoKV(
		ctx,
		"Person server listening",
		"listen_address", lis.Addr().String(),
		"request_log_level", requestLevel.String(),
	)

	if opts.Ready != nil {
		opts.Ready(lis.Addr())
	}

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		logger.ErrorKV(ctx, "GRPC server failed", "error", err)

		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// requestLogging stores l in the context of every unary call.
func requestLogging(l *zap.SugaredLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx = logger.ToContext(ctx, l.With("method", info.FullMethod))

		return handler(ctx, req)
	}
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise binds the port of configAddr
// on all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
