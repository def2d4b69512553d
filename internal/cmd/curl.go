package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/snip/internal/snip"
)

const curlLong = `
The request is converted and rendered as a curl command with no
interaction, then placed on the system clipboard ready to paste.

URLs without a protocol scheme are kept as-is in the rendered command.

On Windows the command is rendered on a single line because cmd.exe
cannot continue lines with a trailing backslash.
`

// curl returns the snip curl subcommand.
func curl() (*cli.Command, error) {
	var options snip.CurlOptions

	return cli.New(
		"curl",
		cli.Short("Copy a request as a curl command"),
		cli.Long(curlLong),
		cli.OptionalArg("file", "Path to the request document", ""),
		cli.Flag(&options.Request, "request", 'r', "", "Name of the request to use"),
		cli.Flag(&options.Print, "print", 'p', false, "Print the command instead of copying it"),
		cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := snip.New(options.Debug, version, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			defer app.Close()

			return app.CopyAsCurl(cmd.Arg("file"), options)
		}),
	)
}
