//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	api "github.com/oshokin/person-profile/internal/api/grpc/person"
	"github.com/oshokin/person-profile/internal/config"
)

// Client wraps the gRPC PersonService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the person server.
	conn *grpc.ClientConn
	// api is the PersonService client interface.
	api api.PersonServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errRequestRequired is returned for a nil describe request.
	errRequestRequired = errors.New("request must be provided")
)

// Dial creates a gRPC client for the person server.
// The connection uses insecure transport credentials.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial person server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         api.NewPersonServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Describe asks the server to render the person carried by req.
func (c *Client) Describe(ctx context.Context, req *api.DescribeRequest) (string, error) {
	if req == nil {
		return "", errRequestRequired
	}

	in, err := req.ToStruct()
	if err != nil {
		return "", err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Describe(callCtx, in)
	if err != nil {
		return "", fmt.Errorf("describe person: %w", err)
	}

	return resp.GetValue(), nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
