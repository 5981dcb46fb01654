package integration

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	api "github.com/oshokin/person-profile/internal/api/grpc/person"
	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/service/common"
	"github.com/oshokin/person-profile/internal/service/describe"
	"github.com/oshokin/person-profile/internal/service/server"
)

// startGRPC starts a person server on a random port with a temporary config.
// Returns the bound address and the config path; the server stops on test cleanup.
func startGRPC(t *testing.T, currentYear int) (string, string) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	require.NoError(t, config.Save(cfgPath, &config.Config{
		Timeout:     5 * time.Second,
		CurrentYear: currentYear,
	}))

	ready := make(chan net.Addr, 1)
	stopped := make(chan error, 1)

	go func() {
		stopped <- server.Run(ctx, &server.Options{
			ConfigPath:    cfgPath,
			ListenAddress: "127.0.0.1:0",
			Ready:         func(addr net.Addr) { ready <- addr },
		})
	}()

	var addr net.Addr
	select {
	case addr = <-ready:
	case err := <-stopped:
		cancel()
		t.Fatalf("server stopped early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("server did not start")
	}

	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-stopped)
	})

	return addr.String(), cfgPath
}

// TestGRPC_Describe starts the real server and exercises the client end to end.
func TestGRPC_Describe(t *testing.T) {
	t.Parallel()

	addr, _ := startGRPC(t, 2024)

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	got, err := c.Describe(ctx, &api.DescribeRequest{
		FirstName:      "Tiger",
		LastName:       "Woods",
		BirthYear:      1975,
		MaritalStatus:  "divorced",
		WeightPounds:   200,
		EducationLevel: "undergraduate",
	})
	require.NoError(t, err)
	require.Equal(t, "tiger woods (divorced) was born in 1975, weighs 200.0 pounds, and has an undergraduate degree!", got)

	// Omitted birth year falls back to the server's configured year.
	got, err = c.Describe(ctx, &api.DescribeRequest{FirstName: "Ada", LastName: "Lovelace", WeightPounds: 120})
	require.NoError(t, err)
	require.Contains(t, got, "was born in 2024")

	_, err = c.Describe(ctx, &api.DescribeRequest{FirstName: "Santa", LastName: "Claus", MaritalStatus: "elf"})
	require.Error(t, err)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestGRPC_DescribeCommandRemote runs the describe command against the real server.
func TestGRPC_DescribeCommandRemote(t *testing.T) {
	t.Parallel()

	addr, cfgPath := startGRPC(t, 2024)

	var buf bytes.Buffer

	err := describe.Run(context.Background(), &buf, &describe.Options{
		ConfigPath:    cfgPath,
		ServerAddress: addr,
		Request: api.DescribeRequest{
			FirstName:      "Santa",
			LastName:       "Claus",
			BirthYear:      1000,
			MaritalStatus:  "yes",
			WeightPounds:   280,
			EducationLevel: "high school",
			UseKilograms:   true,
			UseUppercase:   true,
		},
	})
	require.NoError(t, err)
	require.Equal(t, "SANTA CLAUS (YES) was born in 1000, weighs 127.0 kilograms, and has A HIGH SCHOOL diploma!\n", buf.String())
}
