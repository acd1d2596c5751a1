package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/hesusruiz/arthtml/article"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errNoInput = errors.New("no input file provided")

// convert reads the article in inputFileName and returns the HTML page
func convert(inputFileName string, opts article.Options) (string, error) {
	if opts.Log == nil {
		opts.Log = zap.NewNop().Sugar()
	}

	paras, err := article.ReadFile(inputFileName)
	if err != nil {
		return "", err
	}

	opts.Log.Debugw("article decoded", "file", inputFileName, "paragraphs", len(paras))

	html, err := article.NewRenderer(opts).RenderDocument(paras)
	if err != nil {
		return "", fmt.Errorf("%s: %w", inputFileName, err)
	}
	return html, nil
}

// writeOutput writes the page to outputFileName, or to w if no file name is given
func writeOutput(html string, outputFileName string, w io.Writer) error {
	if len(outputFileName) == 0 {
		_, err := io.WriteString(w, html)
		return err
	}
	return os.WriteFile(outputFileName, []byte(html), 0664)
}

// processWatch checks periodically if an input file (inputFileName) has been modified, and if so
// it processes the file and writes the result to the output file (outputFileName)
func processWatch(ctx context.Context, inputFileName string, outputFileName string, opts article.Options) error {

	var oldTimestamp time.Time

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {

		// Get the modified timestamp of the input file
		info, err := os.Stat(inputFileName)
		if err != nil {
			return fmt.Errorf("%w: %v", article.ErrInputUnreadable, err)
		}

		// If current modified timestamp is newer than the previous timestamp, process the file.
		// A conversion error is reported but does not stop watching.
		if oldTimestamp.Before(info.ModTime()) {
			oldTimestamp = info.ModTime()
			html, err := convert(inputFileName, opts)
			if err != nil {
				opts.Log.Errorw("conversion failed", "file", inputFileName, "error", err)
			} else if err := writeOutput(html, outputFileName, nil); err != nil {
				return err
			} else {
				opts.Log.Infow("output written", "file", outputFileName)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

	}
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	// Output file name command line parameter, stdout if empty
	outputFileName := c.String("output")

	// Dry run
	dryrun := c.Bool("dryrun")

	var z *zap.Logger
	var err error

	// Setup the logging system
	if c.Bool("debug") {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	sugar := z.Sugar()
	defer sugar.Sync()

	// Get the input file name
	if !c.Args().Present() {
		return errNoInput
	}
	inputFileName := c.Args().First()

	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	opts.Log = sugar

	// This is useful for development.
	// If the user specified to watch, loop until interrupted processing the input file when modified
	if c.Bool("watch") {
		if len(outputFileName) == 0 {
			return errors.New("watch mode requires an output file")
		}
		return processWatch(c.Context, inputFileName, outputFileName, opts)
	}

	html, err := convert(inputFileName, opts)
	if err != nil {
		return err
	}

	// Do nothing if flag dryrun was specified
	if dryrun {
		sugar.Debugw("dry run, output not written", "file", inputFileName)
		return nil
	}

	return writeOutput(html, outputFileName, c.App.Writer)
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "arthtml",
		Version:   "v0.1.0",
		Usage:     "convert a structured article into a self-contained HTML page",
		UsageText: "arthtml [options] INPUT_FILE",
		Action:    process,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write html to `FILE` (default is standard output)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read rendering options from the YAML `FILE`",
			},
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "title of the HTML page",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail on markups with crossing ranges",
			},
			&cli.BoolFlag{
				Name:  "highlight",
				Usage: "highlight the syntax of code paragraphs",
			},
			&cli.BoolFlag{
				Name:    "dryrun",
				Aliases: []string{"n"},
				Usage:   "do not write the output, just process the input file",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "watch the input file for changes",
			},
		},
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "arthtml:", err)
		stop()
		os.Exit(1)
	}

}
