package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vagledaren/vagledaren/cmd/service"
)

func main() {
	root := &cobra.Command{
		Use:   "vagledaren",
		Short: "vagledaren",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(service.NewCommand(), service.NewMigrateCommand(), service.NewUsageCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
