package prompt

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (Ctrl+C).
var ErrAborted = errors.New("aborted")

// IsAborted returns true if the error indicates the user aborted (Ctrl+C).
func IsAborted(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, ErrAborted)
}

// wrapError converts promptui interrupt/abort errors to ErrAborted.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if IsAborted(err) {
		return ErrAborted
	}
	return err
}

// Input prompts for text input, pre-filled with defaultValue.
func Input(label, defaultValue string) (string, error) {
	return InputWithValidation(label, defaultValue, nil)
}

// InputOptional prompts for optional text input.
// Returns empty string if the user just presses Enter.
func InputOptional(label, defaultValue string) (string, error) {
	return Input(label+" (optional)", defaultValue)
}

// InputWithValidation prompts for text input checked by validate.
// A nil validate accepts anything.
func InputWithValidation(label, defaultValue string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: defaultValue != "",
		Validate:  validate,
	}

	result, err := p.Run()
	return result, wrapError(err)
}
