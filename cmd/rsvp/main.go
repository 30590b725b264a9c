package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/reusee/dscope"
	"github.com/reusee/rsvp/cmds"
	"github.com/reusee/rsvp/debugs"
	"github.com/reusee/rsvp/logs"
	"github.com/reusee/rsvp/modes"
	"github.com/reusee/rsvp/nets"
	"github.com/reusee/rsvp/readers"
	"github.com/reusee/rsvp/rsvpconfigs"
	"github.com/reusee/rsvp/sources"
)

var (
	fileFlag   = cmds.Var[string]("-file", "read the text from a file")
	urlFlag    = cmds.Var[string]("-url", "fetch the text over http")
	textFlag   = cmds.Var[string]("-text", "read the given text")
	plainFlag  = cmds.Switch("-plain", "print words to stdout instead of the full screen reader")
	tapFlag    = cmds.Switch("-tap", "open a starlark repl over the session")
	scriptFlag = cmds.Var[string]("-script", "run a starlark script over the session")
)

func main() {
	cmds.Execute(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope.Call(func(newSpan logs.NewSpan) {
		ctx, _ = newSpan(ctx, "")
	})

	var source sources.Source
	switch {
	case *fileFlag != "":
		source = sources.File(*fileFlag)
	case *urlFlag != "":
		scope.Call(func(client nets.HTTPClient) {
			source = sources.URL(client, *urlFlag)
		})
	case *textFlag != "":
		source = sources.Text(*textFlag)
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		source = sources.Reader(os.Stdin)
	}
	var text string
	if source != nil {
		var err error
		text, err = source(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load text: %v\n", err)
			os.Exit(1)
		}
	}

	plain := *plainFlag || *tapFlag || *scriptFlag != "" ||
		!isatty.IsTerminal(os.Stdout.Fd())

	if plain {
		runPlain(ctx, scope, text)
		return
	}
	runTUI(scope, text)
}

func runPlain(ctx context.Context, scope dscope.Scope, text string) {
	surface := newPlainSurface(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	scope.Fork(
		func() readers.Surface {
			return surface
		},
	).Call(func(
		controller *readers.Controller,
		tap debugs.Tap,
		exec debugs.Exec,
		logger logs.Logger,
	) {
		controller.SetText(text)

		if *scriptFlag != "" {
			globals := sessionGlobals(controller)
			globals["wait"] = func() {
				select {
				case <-surface.Done():
				case <-ctx.Done():
				}
			}
			err := runScript(ctx, exec, *scriptFlag, globals)
			controller.Pause()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}

		if *tapFlag {
			tap(ctx, "session", sessionGlobals(controller))
			controller.Pause()
			return
		}

		if len(controller.Tokens()) == 0 {
			fmt.Fprintln(os.Stderr, "nothing to read; use -file, -url, -text or pipe text to stdin")
			os.Exit(1)
		}
		controller.Start()
		select {
		case <-surface.Done():
		case <-ctx.Done():
			controller.Pause()
			logger.Info("interrupted", "position", controller.Frame().Position)
		}
		surface.Close()
	})
}

func runTUI(scope dscope.Scope, text string) {
	var logFile rsvpconfigs.LogFile
	scope.Call(func(f rsvpconfigs.LogFile) {
		logFile = f
	})
	// the display owns the terminal; records go to the log file or nowhere
	var writer io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(string(logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		ce(err)
		defer f.Close()
		writer = f
	}

	surface := newTeaSurface()
	scope.Fork(
		func() logs.Writer {
			return writer
		},
		func() readers.Surface {
			return surface
		},
	).Call(func(
		controller *readers.Controller,
	) {
		controller.SetText(text)
		ce(runProgram(newModel(controller, surface, text)))
		controller.Pause()
	})
}

func runScript(ctx context.Context, exec debugs.Exec, path string, globals map[string]any) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = exec(ctx, path, string(src), globals)
	return err
}

// sessionGlobals exposes the controller to the starlark repl.
func sessionGlobals(controller *readers.Controller) map[string]any {
	return map[string]any{
		"start":  controller.Start,
		"pause":  controller.Pause,
		"resume": controller.Resume,
		"toggle": controller.Toggle,
		"back":   controller.Back,
		"set_rate": func(wpm int) bool {
			return controller.SetRate(wpm)
		},
		"set_text": controller.SetText,
		"snapshot": func() map[string]any {
			snapshot := controller.Snapshot()
			return map[string]any{
				"tokens":       snapshot.Tokens,
				"offsets":      snapshot.Offsets,
				"position":     snapshot.Position,
				"phase":        snapshot.Phase,
				"rate":         snapshot.Rate,
				"current":      snapshot.Current,
				"pending":      snapshot.Pending,
				"durations_ms": snapshot.DurationsMS,
			}
		},
		"current": func() string {
			return controller.CurrentPresentation().String()
		},
		"playing": controller.IsPlaying,
	}
}
