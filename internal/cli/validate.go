package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"transparency/internal/catalog"
)

// ValidateCmd checks a catalog document against the schema and the id constraints.
func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a catalog JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			c, err := catalog.Parse(data)
			if err != nil {
				fmt.Fprintf(w, "%s %s\n", failStyle.Sprint("FAIL"), args[0])
				return err
			}
			fmt.Fprintf(w, "%s %s: %d candidates, %d commissions, %d institutions, %d news\n",
				okStyle.Sprint("OK"), args[0],
				len(c.Candidates()), len(c.Commissions()), len(c.Institutions()), len(c.News()))
			return nil
		},
	}
}
