package delta

import "errors"

// ErrInvalidArgument is the sentinel wrapped by every argument-validation
// failure in this package: null/absent inputs, current<=previous, or
// inference against a development or absent baseline. Wrap it with
// fmt.Errorf("%w: ...", ...) for context; callers can still match with
// errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
