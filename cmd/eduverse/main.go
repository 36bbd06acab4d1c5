package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "eduverse",
		Short:        "EduVerse learning platform backend",
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newEmailPreviewCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
