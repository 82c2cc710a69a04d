package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// The create, add, and validate commands are declared but not built yet. They
// print a notice and exit 0 so scripts probing the surface do not break.

func newCreateCmd() *cobra.Command {
	return stubCmd("create", "Create a new spec document from a template")
}

func newAddCmd() *cobra.Command {
	return stubCmd("add", "Add a spec from a shared spec repository")
}

func newValidateCmd() *cobra.Command {
	return stubCmd("validate", "Validate spec documents without generating code")
}

func stubCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(os.Stdout, "cuppa %s: not yet implemented\n", name)
			return nil
		},
	}
}
