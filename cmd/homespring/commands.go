package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/urfave/cli.v1"

	"github.com/appengine-ltd/homespring/internal/config"
	"github.com/appengine-ltd/homespring/internal/driver"
	"github.com/appengine-ltd/homespring/internal/parser"
)

var (
	runCommand = cli.Command{
		Action:    runProgram,
		Name:      "run",
		Usage:     "Run a program through the tick schedule",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{stepsFlag, scheduleFlag},
		Description: `The run command parses the program and runs the configured tick schedule
the requested number of times. Names of salmon caught at the mouth of the river
are printed to stdout as they are caught.`,
	}
	treeCommand = cli.Command{
		Action:    showTree,
		Name:      "tree",
		Usage:     "Show the parsed river as a table",
		ArgsUsage: "<file>",
		Flags:     []cli.Flag{stepsFlag, scheduleFlag},
		Description: `The tree command prints every node of the program. With --steps it first
runs the schedule that many times and shows the resulting state.`,
	}
	checkCommand = cli.Command{
		Action:    checkProgram,
		Name:      "check",
		Usage:     "List node names that are not instructions",
		ArgsUsage: "<file>",
	}
	dumpConfigCommand = cli.Command{
		Action:    dumpConfig,
		Name:      "dumpconfig",
		Usage:     "Show configuration values",
		ArgsUsage: "[dumpfile]",
		Flags:     []cli.Flag{stepsFlag, scheduleFlag},
		Description: `The dumpconfig command shows configuration values, or writes them to
dumpfile when one is given.`,
	}
)

func programArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", errors.New("expected exactly one program file")
	}
	return readProgram(ctx.Args().First())
}

func runProgram(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)
	src, err := programArg(ctx)
	if err != nil {
		return err
	}

	rn, err := driver.NewRunner(cfg, os.Stdout)
	if err != nil {
		return err
	}
	prog, err := rn.Load(src)
	if err != nil {
		return err
	}

	sigctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	stats, err := rn.Run(sigctx, prog)
	log.Debug("Run finished", "steps", stats.Steps, "ticks", stats.Ticks, "err", err)
	return err
}

func showTree(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)
	src, err := programArg(ctx)
	if err != nil {
		return err
	}

	rn, err := driver.NewRunner(cfg, os.Stdout)
	if err != nil {
		return err
	}
	prog, err := rn.Load(src)
	if err != nil {
		return err
	}
	r, ok := prog.River()
	if !ok {
		return errors.New("the empty program has no river")
	}
	if ctx.IsSet(stepsFlag.Name) {
		if _, err := rn.Run(context.Background(), prog); err != nil {
			return err
		}
		fmt.Println()
	}
	driver.Dump(os.Stdout, r)
	return nil
}

func checkProgram(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)
	src, err := programArg(ctx)
	if err != nil {
		return err
	}

	p := parser.New()
	prog, err := p.Parse(src)
	if err != nil {
		return err
	}
	r, ok := prog.River()
	if !ok {
		fmt.Println("empty program")
		return nil
	}
	n, err := driver.Check(os.Stdout, r, p.Vocabulary())
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Println("every node is an instruction")
	}
	return nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() > 0 {
		return config.Save(ctx.Args().First(), cfg)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
