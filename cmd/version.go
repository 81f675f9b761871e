package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of brebot-desktop",
		Long:  `All software has versions. This is brebot-desktop's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set in main via SetVersion; the version
			// template in root.go handles -v/--version, this command is the
			// explicit spelling.
			fmt.Printf("brebot-desktop version %s\n", rootCmd.Version)
		},
	}
}
