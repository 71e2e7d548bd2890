package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ahanak/SeafileLinkScript/internal/service"
)

func main() {
	app := &cli.App{
		Name:      "seafile-link",
		Usage:     "create public share links for files in your Seafile libraries",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:    "terminal",
				Aliases: []string{"t"},
				Usage:   "use terminal prompts instead of desktop dialogs",
			},
			&cli.BoolFlag{
				Name:  "no-copy",
				Usage: "do not copy the link to the clipboard",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			services := service.NewServices(service.Options{
				Terminal: c.Bool("terminal"),
				NoCopy:   c.Bool("no-copy"),
			})
			return services.Share().ShareAll(c.Args().Slice())
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
