package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"github.com/appengine-ltd/homespring/internal/driver"
)

const (
	historyFile = ".homespring_history"
	prompt      = "river> "
)

var replCommand = cli.Command{
	Action:    runRepl,
	Name:      "repl",
	Usage:     "Step through a program tick by tick",
	ArgsUsage: "[file]",
	Flags:     []cli.Flag{scheduleFlag},
	Description: `The repl command loads the program file, if given, and reads commands
from the terminal. Type "help" for the list of commands.`,
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func runRepl(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	setupLogging(cfg)
	color.NoColor = !useColor(cfg.Color, os.Stdout)

	ticks, err := cfg.Ticks()
	if err != nil {
		return err
	}
	session := driver.NewSession(ticks, log.Root())
	if ctx.NArg() > 0 {
		src, err := readProgram(ctx.Args().First())
		if err != nil {
			return err
		}
		if err := session.Load(src); err != nil {
			return err
		}
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(in string) []string {
		var out []string
		for _, c := range driver.Commands() {
			if strings.HasPrefix(c, strings.ToLower(in)) {
				out = append(out, c)
			}
		}
		return out
	})

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if hist == "" {
			return
		}
		if f, err := os.Create(hist); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	caught := color.New(color.FgGreen, color.Bold)
	failed := color.New(color.FgRed)
	fmt.Println(`Homespring ` + version + `. Type "help" for commands.`)

	for {
		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		res, err := session.Exec(input)
		if res.Caught != "" {
			caught.Println(res.Caught)
		}
		if err != nil {
			failed.Println(err)
			continue
		}
		if res.Report != "" {
			fmt.Println(res.Report)
		}
		if res.Quit {
			return nil
		}
	}
}
