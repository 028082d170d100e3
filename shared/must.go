package shared

import "github.com/omics-cicd/release-automation/shared/errors"

// Must panics with err, stack attached at the caller, when err is non-nil. Reserved for
// initialization that cannot fail in a correctly built binary.
func Must(err error) {
	if err != nil {
		panic(errors.WrapWithSkip(err, 1))
	}
}

func MustRet[T any](item T, err error) T {
	if err != nil {
		panic(errors.WrapWithSkip(err, 1))
	}
	return item
}
