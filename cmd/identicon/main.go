package main

import (
	"io"
	"log"
	"os"

	"github.com/bodgit/identicon"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func newGenerator(c *cli.Context) (*identicon.Generator, func(), error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var db *identicon.RenderDB
	if file := c.String("db"); file != "" {
		var err error
		if db, err = identicon.NewRenderDB(file); err != nil {
			return nil, nil, err
		}
	}

	closer := func() {
		if db != nil {
			db.Close()
		}
	}

	return identicon.New(db, logger), closer, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "identicon"
	app.Usage = "deterministic identicon generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"IDENTICON_DB"},
			Usage:   "path to render cache database",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "png",
			Usage:   "output format (png, gif, bmp)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate an identicon for a single input",
			Description: "Writes the identicon for INPUT to FILE, or to a filename derived from INPUT.",
			ArgsUsage:   "INPUT [FILE]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				format, err := identicon.ParseFormat(c.String("format"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				g, closer, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				input := c.Args().First()

				b, err := g.Render(input, format)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				file := c.Args().Get(1)
				if file == "" {
					file = identicon.Filename(input, format)
				}

				if err := os.WriteFile(file, b, 0644); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Generate identicons for every line of a file",
			Description: "Reads one input per line from FILE and writes the identicons, plus a manifest, to DIRECTORY.",
			ArgsUsage:   "FILE [DIRECTORY]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				format, err := identicon.ParseFormat(c.String("format"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				g, closer, err := newGenerator(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				dir := c.Args().Get(1)
				if dir == "" {
					dir = "."
				}

				if err := g.Batch(c.Args().First(), dir, format); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
