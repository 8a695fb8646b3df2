package debugger

import (
	"errors"

	"github.com/ezrec/asml/translate"
)

var f = translate.From

var (
	ErrArgument = errors.New(f("invalid argument"))
)

// ErrCommand is an unrecognized debugger command.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("unknown command %q, try 'help'", string(err))
}

func (err ErrCommand) Is(target error) (ok bool) {
	_, ok = target.(ErrCommand)
	return
}
