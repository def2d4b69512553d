package snip

import (
	"fmt"
	"runtime"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/snip/internal/har"
	"go.followtheprocess.codes/snip/internal/render"
)

// Curl target/client keys in the builtin catalog.
const (
	curlTarget = "shell"
	curlClient = "curl"
)

// CurlOptions are the flags passed to the curl subcommand.
type CurlOptions struct {
	// Request is the name of the request to copy, may be empty if the file
	// contains exactly one request.
	Request string

	// Print writes the command to stdout instead of the clipboard.
	Print bool

	// Debug enables debug logging.
	Debug bool
}

// CopyAsCurl implements the curl subcommand: the same resolve → convert
// pipeline as Generate but with no interaction, rendering the request as a
// curl command and putting it straight on the clipboard.
//
// The curl renderer validates URLs strictly, so a request without a protocol
// scheme is validated with a temporary http:// prefix while the rendered
// command embeds the original bare URL.
func (s *Snip) CopyAsCurl(file string, options CurlOptions) error {
	logger := s.logger.WithPrefix("curl")

	logger.Debug("Curl configuration", "options", fmt.Sprintf("%+v", options))

	parsed, ok, err := s.resolveSource(logger, file)
	if err != nil {
		return err
	}

	if !ok {
		logger.Debug("No request text to operate on")
		return nil
	}

	request, err := pickRequest(parsed, options.Request)
	if err != nil {
		return err
	}

	converted := har.Convert(request)

	// curl on cmd.exe cannot continue lines with a trailing backslash
	renderOptions := render.Options{Compact: runtime.GOOS == "windows"}

	command, err := s.renderFor(converted, curlTarget, curlClient, renderOptions)
	if err != nil {
		return fmt.Errorf("could not render curl command: %w", err)
	}

	s.lastSnippet = command

	if options.Print {
		fmt.Fprint(s.stdout, command)
		return nil
	}

	if err := s.clipboard.Write(command); err != nil {
		return fmt.Errorf("could not copy curl command to clipboard: %w", err)
	}

	msg.Fsuccess(s.stdout, "Copied curl command to clipboard")

	return nil
}
