package logrus_bugsnag

import (
	"github.com/bugsnag/bugsnag-go/v2"
	bugsnagerrors "github.com/bugsnag/bugsnag-go/v2/errors"
	"github.com/omics-cicd/release-automation/shared/errors"
	"github.com/sirupsen/logrus"
)

// Hook forwards error-level log entries to Bugsnag. It is a port of
// github.com/Shopify/logrus-bugsnag to bugsnag-go v2.
type Hook struct {
	notify func(err error, rawData ...any) error
}

var ErrBugsnagUnconfigured = errors.NewSentinelError("bugsnag must be configured before installing this logrus hook")

type ErrBugsnagSendFailed struct {
	err error
}

func (e ErrBugsnagSendFailed) Error() string {
	return "failed to send error to Bugsnag: " + e.err.Error()
}

func (e ErrBugsnagSendFailed) Unwrap() error {
	return e.err
}

// NewBugsnagHook must be called after bugsnag.Configure.
func NewBugsnagHook() (*Hook, error) {
	if bugsnag.Config.APIKey == "" {
		return nil, ErrBugsnagUnconfigured
	}
	return &Hook{notify: bugsnag.Notify}, nil
}

// logrus and this hook sit between the logging call and Fire.
const skipStackFrames = 3

// Fire reports the entry's "error" field, or its message when there is none. Other fields are
// attached as metadata.
func (hook *Hook) Fire(entry *logrus.Entry) error {
	var reported error = bugsnagerrors.New(entry.Message, 1).Err
	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		reported = err
	}

	metadata := bugsnag.MetaData{"metadata": map[string]any{"message": entry.Message}}
	for key, value := range entry.Data {
		if key != logrus.ErrorKey {
			metadata["metadata"][key] = value
		}
	}

	if err := hook.notify(errors.WrapWithSkip(reported, skipStackFrames), metadata); err != nil {
		return ErrBugsnagSendFailed{err}
	}
	return nil
}

func (hook *Hook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.ErrorLevel,
		logrus.FatalLevel,
		logrus.PanicLevel,
	}
}
