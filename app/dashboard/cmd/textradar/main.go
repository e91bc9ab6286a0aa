package main

import (
	"os"

	"github.com/iWorld-y/text_radar/app/dashboard/internal/cli"
)

// go build -ldflags "-X main.Version=x.y.z"
var Version string

func main() {
	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		os.Exit(1)
	}
}
