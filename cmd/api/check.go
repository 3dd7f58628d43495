package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/appointment"
)

// newCheckCmd validates one request offline, exactly as a submission would.
func newCheckCmd() *cobra.Command {
	req := appointment.Default()

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate an appointment request without serving",
		Example: `  toothfairy check --name "Asha Rao" --phone 9876543210 --branch Kondapur --treatment Braces`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Branch = clinic.NormalizeBranch(req.Branch)

			if err := appointment.Validate(req).Err(); err != nil {
				return fmt.Errorf("invalid appointment request:\n%w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s, %s at %s\n", req.FullName, req.Treatment, req.Branch)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.FullName, "name", "", "full name")
	flags.StringVar(&req.Phone, "phone", "", "10 digit mobile number")
	flags.StringVar(&req.Branch, "branch", req.Branch, "clinic branch")
	flags.StringVar(&req.Treatment, "treatment", "", "treatment to book")
	flags.StringVar(&req.Message, "message", "", "optional message")

	return cmd
}
