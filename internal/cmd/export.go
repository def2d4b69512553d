package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/snip/internal/snip"
)

const exportLong = `
The path argument may be a directory or a file.

If it is the name of a request document, every request in it is
converted to the normalized interchange representation and written to
stdout in the chosen format.

If it is a directory, it is scanned recursively for request documents
and all of them are exported.
`

// export returns the snip export subcommand.
func export() (*cli.Command, error) {
	var options snip.ExportOptions

	return cli.New(
		"export",
		cli.Short("Export requests in their interchange form"),
		cli.Long(exportLong),
		cli.RequiredArg("path", "Path to export, may be directory or file"),
		cli.Flag(&options.Format, "format", 'f', "json", "Output format, one of (json|yaml|toml)"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := snip.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			defer app.Close()

			return app.Export(context.Background(), cmd.Arg("path"), options)
		}),
	)
}
