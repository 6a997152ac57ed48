package main

import (
	"fmt"
	"os"

	"github.com/gekko3d/rigkit"
)

func main() {
	cfg, err := rigkit.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app := rigkit.NewApp()
	app.UseModules(
		rigkit.LoggingModule{Prefix: "rigkit"},
		rigkit.HierarchyModule{},
		rigkit.CameraRigModule{Config: *cfg},
	)
	app.RunOnce()
}
