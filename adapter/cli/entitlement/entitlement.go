package entitlement

import "github.com/spf13/cobra"

// Cmd is the entitlement command group.
var Cmd = &cobra.Command{
	Use:   "entitlement",
	Short: "Inspect subscription and trial access",
	Long:  `Check whether a user currently holds paid or trial access.`,
}

func init() {
	Cmd.AddCommand(checkCmd)
}
