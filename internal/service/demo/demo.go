package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/person-profile/internal/config"
	"github.com/oshokin/person-profile/internal/domain/person"
	"github.com/oshokin/person-profile/internal/logger"
	"github.com/oshokin/person-profile/internal/repository/roster"
	"github.com/oshokin/person-profile/internal/ui"
)

// Options configures the demonstration run.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// RosterFile overrides the roster file from config when specified.
	RosterFile string
	// Now returns the wall-clock time; time.Now when nil.
	Now func() time.Time
	// Plain disables headings so output is only description lines.
	Plain bool
}

// Fixtures returns the built-in sample people.
func Fixtures() ([]*person.Person, error) {
	samples := []person.Attributes{
		{
			FirstName:      "Tiger",
			LastName:       "Woods",
			BirthYear:      1975,
			MaritalStatus:  "divorced",
			WeightPounds:   200,
			EducationLevel: "undergraduate",
		},
		{
			FirstName:      "Jason",
			LastName:       "Wilder",
			BirthYear:      2000,
			MaritalStatus:  "no",
			WeightPounds:   180,
			EducationLevel: "graduate",
		},
		{
			FirstName:      "Santa",
			LastName:       "Claus",
			BirthYear:      1000,
			MaritalStatus:  "yes",
			WeightPounds:   280,
			EducationLevel: "high school",
		},
	}

	people := make([]*person.Person, 0, len(samples))

	for _, attrs := range samples {
		p, err := attrs.Build()
		if err != nil {
			return nil, fmt.Errorf("build fixture %s %s: %w", attrs.FirstName, attrs.LastName, err)
		}

		people = append(people, p)
	}

	return people, nil
}

// Print writes the description of p in the default form, kilograms only,
// and then every (kilograms, uppercase) combination.
func Print(w io.Writer, p *person.Person) error {
	if err := p.PrintDetails(w); err != nil {
		return err
	}

	if err := p.PrintDetailsInUnits(w, true); err != nil {
		return err
	}

	for _, kilograms := range []bool{true, false} {
		for _, uppercase := range []bool{true, false} {
			if err := p.PrintDetailsFormatted(w, kilograms, uppercase); err != nil {
				return err
			}
		}
	}

	return nil
}

// Run prints the descriptions of the sample people or of the configured roster.
func Run(ctx context.Context, out io.Writer, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "person-demo")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	rosterFile := cfg.RosterFile
	if opts.RosterFile != "" {
		rosterFile = opts.RosterFile
	}

	people, err := loadPeople(ctx, rosterFile, cfg.Year(now()))
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Describing people", "count", len(people), "roster_file", rosterFile)

	for _, p := range people {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !opts.Plain {
			if _, err := fmt.Fprintln(out, ui.Heading("%s %s", p.FirstName(), p.LastName())); err != nil {
				return fmt.Errorf("print heading: %w", err)
			}
		}

		if err := Print(out, p); err != nil {
			return err
		}

		logger.DebugKV(ctx, "Described person", "first_name", p.FirstName(), "last_name", p.LastName())
	}

	return nil
}

// loadPeople reads the roster when one is configured, otherwise returns the fixtures.
func loadPeople(ctx context.Context, rosterFile string, currentYear int) ([]*person.Person, error) {
	if rosterFile == "" {
		return Fixtures()
	}

	people, err := roster.NewFileRepository(rosterFile, currentYear).Load(ctx)
	switch {
	case err == nil:
		return people, nil
	case errors.Is(err, roster.ErrNotFound):
		return nil, fmt.Errorf("roster %s: %w", rosterFile, err)
	default:
		return nil, fmt.Errorf("load roster: %w", err)
	}
}
