package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intent",
	Short: "Intent prediction microservice",
	Long:  `A microservice serving intent predictions from a trained classification model over HTTP, with token-gated access and durable prediction logging.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
