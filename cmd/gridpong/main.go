package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/diegok/gridpong/internal/app"
	"github.com/diegok/gridpong/internal/config"
	"github.com/diegok/gridpong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			printUsage()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	log, closer := logging.Setup(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})

	application := app.NewApp(cfg, log)
	runErr := application.Run()
	closeLog(closer, os.Stderr)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// closeLog closes the log file and reports a failure on w
func closeLog(c io.Closer, w io.Writer) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(w, "Error: failed to close log: %v\n", err)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  gridpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --ai <ask|yes|no>        Computer plays the right paddle (default: ask)")
	fmt.Fprintln(os.Stderr, "  --width <n>              Playfield width (default: 60)")
	fmt.Fprintln(os.Stderr, "  --height <n>             Playable rows (default: 20)")
	fmt.Fprintln(os.Stderr, "  --paddle-height <n>      Paddle height (default: 4)")
	fmt.Fprintln(os.Stderr, "  --tick <duration>        Time per tick (default: 100ms)")
	fmt.Fprintln(os.Stderr, "  --seed <n>               Random seed, 0 uses the clock")
	fmt.Fprintln(os.Stderr, "  --log-file <path>        Write JSON logs to a rotating file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>      Log level (default: info)")
	fmt.Fprintln(os.Stderr, "  --config <path>          Read settings from a config file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set as GRIDPONG_<OPTION>, e.g. GRIDPONG_AI=yes")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys:")
	fmt.Fprintln(os.Stderr, "  W / S        Left paddle")
	fmt.Fprintln(os.Stderr, "  Up / Down    Right paddle")
	fmt.Fprintln(os.Stderr, "  Q / Esc      Quit")
}
