package fluentmapper

import fmerrors "github.com/waratah/fluent-mapper/errors"

// Compilation error sentinels, re-exported so callers can match them with
// errors.Is without a second import. The errors subpackage carries the
// structured field keys attached to each.
var (
	ErrDuplicateProperty          = fmerrors.ErrDuplicateProperty
	ErrUnmatchedTargetProperty    = fmerrors.ErrUnmatchedTargetProperty
	ErrUnmatchedSourceProperty    = fmerrors.ErrUnmatchedSourceProperty
	ErrIncompatibleTypes          = fmerrors.ErrIncompatibleTypes
	ErrNoParameterlessConstructor = fmerrors.ErrNoParameterlessConstructor
)
