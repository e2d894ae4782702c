package filtered

import "errors"

// ErrNilFilter is returned when a constructor or SetFilter is given a nil
// filter. A wrapper cannot exist, even transiently, without an active filter.
var ErrNilFilter = errors.New("filtered: filter is required")
