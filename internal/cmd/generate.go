package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/snip/internal/snip"
)

const generateLong = `
The file argument is a request document in JSON or YAML form, if omitted
the document is read from stdin. Nothing piped in means nothing to do,
the command exits silently.

By default an interactive two step flow asks for the output target (the
language or ecosystem) and then the client (the library or tool) to
generate code for. Pass '--target' and '--client' together to skip the
prompts entirely.

Extra targets and clients may be declared in a TOML catalog file given
by '--catalog', each with an inline template used to render its snippet.
`

// generate returns the snip generate subcommand.
func generate() (*cli.Command, error) {
	var options snip.GenerateOptions

	return cli.New(
		"generate",
		cli.Short("Generate a code snippet from a request description"),
		cli.Long(generateLong),
		cli.OptionalArg("file", "Path to the request document", ""),
		cli.Flag(&options.Request, "request", 'r', "", "Name of the request to use"),
		cli.Flag(&options.Target, "target", 't', "", "Target key, skips the target prompt"),
		cli.Flag(&options.Client, "client", 'c', "", "Client key, skips the client prompt"),
		cli.Flag(&options.Catalog, "catalog", cli.NoShortHand, "", "Path to a user catalog file"),
		cli.Flag(&options.Copy, "copy", cli.NoShortHand, false, "Also copy the snippet to the clipboard"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := snip.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			defer app.Close()

			return app.Generate(cmd.Arg("file"), options)
		}),
	)
}
