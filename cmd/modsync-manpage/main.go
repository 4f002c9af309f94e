package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/Punkwe1ght/modsync/cmd/modsync"
	"github.com/Punkwe1ght/modsync/internal/version"
)

func main() {
	rootCmd := modsync.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MODSYNC",
		Section: "1",
		Source:  "modsync " + version.Version,
		Manual:  "modsync manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
