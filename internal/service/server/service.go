package server

import (
	"context"

	api "github.com/oshokin/person-profile/internal/api/grpc/person"
	"github.com/oshokin/person-profile/internal/domain/person"
	"github.com/oshokin/person-profile/internal/logger"
)

// service renders person descriptions on behalf of remote callers.
// It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// currentYear returns the birth year of people who omit one.
	// Called once per request.
	currentYear func() int
}

// newService creates a service that asks currentYear for the present year.
func newService(currentYear func() int) *service {
	return &service{
		currentYear: currentYear,
	}
}

// Describe builds a person from the request and renders it.
// Every call gets its own Person, so concurrent requests share nothing.
func (s *service) Describe(ctx context.Context, req *api.DescribeRequest) (string, error) {
	attrs := person.Attributes{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthYear:      req.BirthYear,
		MaritalStatus:  req.MaritalStatus,
		WeightPounds:   req.WeightPounds,
		EducationLevel: req.EducationLevel,
	}

	p, err := attrs.WithDefaults(s.currentYear()).Build()
	if err != nil {
		logger.WarnKV(ctx, "Rejected describe request", "error", err)

		return "", err
	}

	logger.DebugKV(
		ctx,
		"Describing person",
		"first_name", p.FirstName(),
		"last_name", p.LastName(),
		"use_kilograms", req.UseKilograms,
		"use_uppercase", req.UseUppercase,
	)

	return p.Describe(req.UseKilograms, req.UseUppercase), nil
}
