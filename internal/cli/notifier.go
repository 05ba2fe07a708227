package cli

import (
	"fmt"
	"io"
)

// ToastNotifier renders user-visible feedback inline, the terminal
// equivalent of the application's toast sink.
type ToastNotifier struct {
	out io.Writer
}

// NewToastNotifier creates a notifier writing to out.
func NewToastNotifier(out io.Writer) *ToastNotifier {
	return &ToastNotifier{out: out}
}

// Success reports a completed action.
func (n *ToastNotifier) Success(msg string) {
	fmt.Fprintln(n.out, FormatSuccess(msg))
}

// Warning reports a non-fatal condition the operator should see.
func (n *ToastNotifier) Warning(msg string) {
	fmt.Fprintln(n.out, FormatWarning(msg))
}

// Error reports a rejected action with its violated constraint.
func (n *ToastNotifier) Error(msg string) {
	fmt.Fprintln(n.out, FormatError(msg))
}

// Info reports neutral information.
func (n *ToastNotifier) Info(msg string) {
	fmt.Fprintln(n.out, FormatInfo(msg))
}
