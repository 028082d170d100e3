package shared

import (
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
)

// shared.reportPanic
// shared.RecoverAndReport
// runtime.gopanic
// original panic location <--
const skipStackFramesCount = 3

// RecoverAndReport logs a panic with the stack of its origin, so the error reporter sees where
// it happened, then panics again. Use it as the first deferred call of an entrypoint.
func RecoverAndReport() {
	if item := recover(); item != nil {
		reportPanic(item)
		panic(item)
	}
}

func reportPanic(item any) {
	err := errors.ErrorfWithSkip(skipStackFramesCount, "panic: %v", item)

	if errOrig, ok := item.(error); ok {
		err = errors.WrapWithSkip(errOrig, skipStackFramesCount)
	}

	logrus.WithError(err).Error("caught panic")
}
