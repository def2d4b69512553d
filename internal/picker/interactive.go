package picker

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/snip/internal/catalog"
)

// back is the sentinel index representing the back affordance in the
// client selection list.
const back = -1

// Run drives the given [Picker] to a terminal state interactively using a
// terminal select prompt for each step.
//
// Dismissing the prompt (esc/ctrl+c) cancels the flow. Run only returns a
// non-nil error on real terminal failures, cancellation is not an error:
// inspect the picker's state or [Picker.Selection] afterwards.
func Run(picker *Picker) error {
	for {
		switch picker.State() {
		case SelectingTarget:
			if err := selectTarget(picker); err != nil {
				return err
			}
		case SelectingClient:
			if err := selectClient(picker); err != nil {
				return err
			}
		case Completed, Cancelled:
			return nil
		}
	}
}

// selectTarget shows the step 1 prompt and applies the outcome to the picker.
func selectTarget(picker *Picker) error {
	targets := picker.Targets()

	options := make([]huh.Option[int], 0, len(targets))
	for i, target := range targets {
		options = append(options, huh.NewOption(target.Title, i))
	}

	var choice int

	err := huh.NewSelect[int]().
		Title("Generate code snippet").
		Description("Choose a target").
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			picker.Dismiss()
			return nil
		}

		return fmt.Errorf("target selection failed: %w", err)
	}

	picker.Accept(choice)

	return nil
}

// selectClient shows the step 2 prompt, including the back affordance, and
// applies the outcome to the picker.
func selectClient(picker *Picker) error {
	clients := picker.Clients()

	options := make([]huh.Option[int], 0, len(clients)+1)
	for i, client := range clients {
		options = append(options, huh.NewOption(clientLabel(client), i))
	}

	if picker.BackAvailable() {
		options = append(options, huh.NewOption("Back to targets", back))
	}

	var choice int

	err := huh.NewSelect[int]().
		Title("Generate code snippet").
		Description("Choose a client").
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			picker.Dismiss()
			return nil
		}

		return fmt.Errorf("client selection failed: %w", err)
	}

	if choice == back {
		picker.Back()
		return nil
	}

	picker.Accept(choice)

	return nil
}

// clientLabel renders the select label for a client.
func clientLabel(client catalog.Client) string {
	if client.Description == "" {
		return client.Title
	}

	return fmt.Sprintf("%s (%s)", client.Title, client.Description)
}
