package main

import (
	"os"

	persistmake "github.com/arthur-debert/persist-make/cmd/persist-make"
)

func main() {
	rootCmd := persistmake.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		persistmake.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
