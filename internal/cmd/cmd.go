// Package cmd implements snip's CLI.
package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/snip/internal/snip"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the snip CLI.
func Build() (*cli.Command, error) {
	var debug bool

	return cli.New(
		"snip",
		cli.Short("Generate code snippets from HTTP request descriptions"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Pick a target and client interactively", "snip generate ./demo.json"),
		cli.Example("Pipe a request document in and skip the prompts", "cat demo.json | snip generate --target shell --client curl"),
		cli.Example("Copy a request as a ready-to-run curl command", "snip curl ./demo.json"),
		cli.Example("Dump the normalized interchange form of every request", "snip export ./requests --format yaml"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&debug, "debug", 'd', false, "Enable debug logs"),
		cli.SubCommands(generate, curl, export),
		cli.Run(func(cmd *cli.Command, args []string) error {
			// Bare snip reads a request document from stdin, a terminal
			// with nothing piped in is simply a no-op
			app := snip.New(debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			defer app.Close()

			return app.Generate("", snip.GenerateOptions{Debug: debug})
		}),
	)
}
