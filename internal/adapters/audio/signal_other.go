//go:build !unix

package audio

import (
	"errors"
	"os"
)

var errNoSuspend = errors.New("process suspend not supported")

func suspend(*os.Process) error { return errNoSuspend }
func resume(*os.Process) error  { return errNoSuspend }
