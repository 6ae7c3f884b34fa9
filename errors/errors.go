package errors

import "github.com/ygrebnov/errorc"

// Namespace prefixes every sentinel message and error field key.
const Namespace = "fluentmapper"

var namespace = errorc.Namespace(Namespace)

// Sentinel errors raised during specification compilation. Use errors.Is to match.
var (
	ErrDuplicateProperty          = namespace.NewError("duplicate property name")
	ErrUnmatchedTargetProperty    = namespace.NewError("unmatched target property")
	ErrUnmatchedSourceProperty    = namespace.NewError("unmatched source property")
	ErrIncompatibleTypes          = namespace.NewError("cannot map target property from source property")
	ErrNoParameterlessConstructor = namespace.NewError("no parameterless constructor")
)

var newKey = errorc.KeyFactory(Namespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentValue       = "value"
	keySegmentConstructor = "constructor"
)

// Exported structured error field keys. Keep the rendered keys stable for log
// queries.
var (
	ErrorFieldTargetValue = newKey("target", keySegmentValue) // fluentmapper.value.target
	ErrorFieldSourceValue = newKey("source", keySegmentValue) // fluentmapper.value.source
	ErrorFieldProperty    = newKey("name", keySegmentValue)   // fluentmapper.value.name
	ErrorFieldSide        = newKey("side", keySegmentValue)   // fluentmapper.value.side
)

var (
	ErrorFieldTargetType = newKey("target_type", keySegmentConstructor) // fluentmapper.constructor.target_type
)
