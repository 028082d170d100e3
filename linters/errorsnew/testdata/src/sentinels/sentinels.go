package sentinels

import (
	gerrors "errors"
	"fmt"
)

var ErrAliased = gerrors.New("aliased") // want `Found "gerrors.New" in the global scope`

var ErrFormatted = fmt.Errorf("formatted %d", 1) // want `Found "fmt.Errorf" in the global scope`

var notAnError = fmt.Sprintf("%d", 1)

func inFunction() error {
	var err = gerrors.New("fine inside a function")
	return err
}
