package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	api "github.com/oshokin/person-profile/internal/api/grpc/person"
	"github.com/oshokin/person-profile/internal/service/describe"
)

// newDescribeCmd builds the `describe` subcommand.
func newDescribeCmd() *cobra.Command {
	var (
		request       api.DescribeRequest
		serverAddress string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe one person given by flags.",
		Long: `Builds a person from flags and prints one description line.

Omitted --birth-year defaults to the current year, omitted --marital-status to "no"
and omitted --education-level to "high school". Marital status accepts yes, no or
divorced; education level accepts high school, undergraduate or graduate, in any
letter case. With --server the description is rendered by a person-server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return describe.Run(ctx, cmd.OutOrStdout(), &describe.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Request:       request,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&request.FirstName, "first-name", "", "first name")
	flags.StringVar(&request.LastName, "last-name", "", "last name")
	flags.IntVar(&request.BirthYear, "birth-year", 0, "birth year (default current year)")
	flags.StringVar(&request.MaritalStatus, "marital-status", "", `marital status: yes, no or divorced (default "no")`)
	flags.Float64Var(&request.WeightPounds, "weight", 0, "weight in pounds")
	flags.StringVar(&request.EducationLevel, "education-level", "",
		`education level: high school, undergraduate or graduate (default "high school")`)
	flags.BoolVarP(&request.UseKilograms, "kilograms", "k", false, "print weight in kilograms")
	flags.BoolVarP(&request.UseUppercase, "uppercase", "u", false, "print in upper case")
	flags.StringVarP(&serverAddress, "server", "s", "", "person-server address to render remotely")

	for _, name := range []string{"first-name", "last-name", "weight"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	return cmd
}
