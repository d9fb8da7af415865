package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Notifier delivers a formatted consensus message.
type Notifier interface {
	Send(ctx context.Context, text string) error
	Name() string
}

// ConsoleNotifier prints messages to stdout. Used in test mode instead of
// Telegram delivery.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

func (c *ConsoleNotifier) Name() string { return "console" }

func (c *ConsoleNotifier) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.Out, text)
	return err
}
