package describe

import (
	"context"
	"fmt"
	"io"
	"time"

	api "github.com/oshokin/person-profile/internal/api/grpc/person"
	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/domain/person"
	"github.com/oshokin/person-profile/internal/logger"
	"github.com/oshokin/person-profile/internal/service/common"
)

// Options configures a single describe call.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress, when set, sends the request to a person server instead of
	// rendering locally.
	ServerAddress string
	// Request is the person and output format to render.
	Request api.DescribeRequest
	// Now returns the wall-clock time; time.Now when nil.
	Now func() time.Time
}

// Run writes the description of the requested person to out.
func Run(ctx context.Context, out io.Writer, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "person-describe")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var description string
	if opts.ServerAddress != "" {
		description, err = describeRemote(ctx, cfg, opts)
	} else {
		description, err = describeLocal(cfg, opts)
	}

	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, description); err != nil {
		return fmt.Errorf("print description: %w", err)
	}

	return nil
}

// describeLocal builds and renders the person in process.
func describeLocal(cfg *config.Config, opts *Options) (string, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	req := opts.Request
	attrs := person.Attributes{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthYear:      req.BirthYear,
		MaritalStatus:  req.MaritalStatus,
		WeightPounds:   req.WeightPounds,
		EducationLevel: req.EducationLevel,
	}

	p, err := attrs.WithDefaults(cfg.Year(now())).Build()
	if err != nil {
		return "", err
	}

	return p.Describe(req.UseKilograms, req.UseUppercase), nil
}

// describeRemote delegates rendering to the person server.
func describeRemote(ctx context.Context, cfg *config.Config, opts *Options) (string, error) {
	client, err := common.Dial(ctx, opts.ServerAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Describing person remotely", "server_address", opts.ServerAddress)

	return client.Describe(ctx, &opts.Request)
}
