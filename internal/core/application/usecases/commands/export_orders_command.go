package commands

import (
	"errors"
	"io"

	"ruburger/internal/pkg/errs"
	"ruburger/internal/pkg/guard"
)

var (
	ErrExportOrdersCommandIsNotConstructed = errors.New(
		"ExportOrdersCommand must be created via NewExportOrdersCommand constructor",
	)
)

// ExportOrdersCommand represents a request to write a receipt-style snapshot
// of all placed orders to the given sink.
type ExportOrdersCommand struct { //nolint:recvcheck //using for validation
	sink io.Writer

	guard guard.ConstructorGuard
}

// NewExportOrdersCommand creates a command to export placed orders to sink.
func NewExportOrdersCommand(sink io.Writer) (ExportOrdersCommand, error) {
	if sink == nil {
		return ExportOrdersCommand{}, errs.NewValueIsRequiredError("sink")
	}

	return ExportOrdersCommand{
		sink:  sink,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExportOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExportOrdersCommandIsNotConstructed)
}

// Sink returns the destination the export is written to.
func (c ExportOrdersCommand) Sink() io.Writer {
	return c.sink
}
