package main

import (
	"github.com/brebuilds/brebot/cmd"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
