package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
	colorFlag = cli.StringFlag{
		Name:  "color",
		Usage: "Colour output: auto, always or never",
		Value: "auto",
	}
	stepsFlag = cli.IntFlag{
		Name:  "steps",
		Usage: "Number of times to run the tick schedule",
	}
	scheduleFlag = cli.StringFlag{
		Name:  "schedule",
		Usage: "Comma-separated tick names making up one step",
	}
)

var versionCommand = cli.Command{
	Action:    printVersion,
	Name:      "version",
	Usage:     "Print version numbers",
	ArgsUsage: " ",
}

func printVersion(ctx *cli.Context) error {
	fmt.Println("Homespring")
	fmt.Println("Version:", version)
	fmt.Println("Git Commit:", commit)
	fmt.Println("Build Date:", date)
	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "homespring"
	app.Usage = "run Homespring river programs"
	app.Version = fmt.Sprintf("%s (%s) %s", version, commit, date)
	app.Flags = []cli.Flag{configFileFlag, verbosityFlag, colorFlag}
	app.Commands = []cli.Command{
		runCommand,
		treeCommand,
		checkCommand,
		replCommand,
		dumpConfigCommand,
		versionCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
