package unison

import "errors"

// ErrNoUnisonVector indicates the mapping is not codimension-1 (its rank is
// not exactly d-1), or every candidate column-0 vector produced a
// numerically singular augmented matrix — the latter should not happen
// when the mapping is genuinely codimension-1.
var ErrNoUnisonVector = errors.New("unison: no unison vector (mapping not codimension-1)")
