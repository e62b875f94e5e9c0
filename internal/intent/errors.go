package intent

import "errors"

// ErrClassificationDegraded is logged when the classifier call fails and the
// request falls back to LabelNotFound.
var ErrClassificationDegraded = errors.New("intent classification degraded")
