package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/anime-verse/internal/logger"
	"github.com/MKhiriev/anime-verse/internal/service"
	"github.com/MKhiriev/anime-verse/internal/tui"
	"github.com/MKhiriev/anime-verse/internal/utils"
	"github.com/MKhiriev/anime-verse/internal/workers"
	"github.com/MKhiriev/anime-verse/models"
)

const shellPrompt = "animeverse> "

type App struct {
	services  *service.ClientServices
	workers   *workers.Workers
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	in        *bufio.Reader
	out       io.Writer
	passwords PasswordReader
	copyText  func(string) error
	ids       *utils.UUIDGenerator

	commands map[string]command
}

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

// NewApp builds the client application on top of the services built by the
// composition root. It reads from stdin and writes to stdout.
func NewApp(services *service.ClientServices, workers *workers.Workers, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	in := bufio.NewReader(os.Stdin)

	a := &App{
		services:  services,
		workers:   workers,
		buildInfo: buildInfo,
		logger:    logger,
		in:        in,
		out:       os.Stdout,
		passwords: &termPasswordReader{fd: int(os.Stdin.Fd()), in: in, out: os.Stdout},
		copyText:  clipboard.WriteAll,
		ids:       utils.NewUUIDGenerator(),
	}
	a.commands = a.registerCommands()

	return a
}

// Run implements Client. The session is restored first; a network failure
// during restore keeps the persisted profile.
func (a *App) Run(ctx context.Context, args []string) error {
	state := a.services.Session.Restore(ctx)
	a.logger.Debug().Str("func", "App.Run").Str("state", state.String()).Msg("session restored")

	if len(args) == 0 {
		return a.shell(ctx)
	}
	return a.execute(ctx, args)
}

func (a *App) execute(ctx context.Context, args []string) error {
	name := strings.ToLower(args[0])
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q, try \"help\"", ErrUnknownCommand, args[0])
	}

	// every request of one command shares a request id
	requestID := a.ids.Generate()
	a.logger.Debug().Str("func", "App.execute").Str("command", name).Str("request_id", requestID).Msg("running command")
	return cmd.run(utils.WithRequestID(ctx, requestID), args[1:])
}

// shell reads commands line by line until "exit", end of input or ctx is
// done. The refresh worker runs for the lifetime of the shell.
func (a *App) shell(ctx context.Context) error {
	a.workers.Run(ctx)
	defer a.workers.Stop()

	lines := a.lineReader()
	defer lines.close()

	fmt.Fprintln(a.out, `AnimeVerse shell. Type "help" for commands, "exit" to quit.`)

	for {
		fmt.Fprint(a.out, shellPrompt)
		pending := lines.next()

		var res lineResult
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out)
			return nil
		case res = <-pending:
		}

		if res.err != nil && !errors.Is(res.err, io.EOF) {
			return fmt.Errorf("read command: %w", res.err)
		}

		args := strings.Fields(res.line)
		if len(args) > 0 {
			if name := strings.ToLower(args[0]); name == "exit" || name == "quit" {
				return nil
			}
			if cmdErr := a.execute(ctx, args); cmdErr != nil {
				fmt.Fprintln(a.out, tui.RenderError(cmdErr))
			}
		}

		if errors.Is(res.err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// lineReader reads input lines on its own goroutine, one per request, so the
// shell can stop waiting when its context is cancelled. Reading only on
// request keeps the input free for password prompts while a command runs.
type lineReader struct {
	want    chan struct{}
	results chan lineResult
}

func (a *App) lineReader() *lineReader {
	r := &lineReader{
		want:    make(chan struct{}),
		results: make(chan lineResult, 1),
	}

	go func() {
		for range r.want {
			line, err := a.in.ReadString('\n')
			r.results <- lineResult{line: line, err: err}
		}
	}()

	return r
}

// next requests one line and returns the channel it is delivered on.
func (r *lineReader) next() <-chan lineResult {
	r.want <- struct{}{}
	return r.results
}

// close lets the reader goroutine exit once a pending read returns.
func (r *lineReader) close() {
	close(r.want)
}

func (a *App) help(context.Context, []string) error {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	width := 0
	for _, name := range names {
		if w := len(a.commands[name].usage); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range names {
		cmd := a.commands[name]
		fmt.Fprintf(&b, "  %-*s  %s\n", width, cmd.usage, cmd.help)
	}
	fmt.Fprint(a.out, b.String())
	return nil
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}
