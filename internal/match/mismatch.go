package match

//go:generate go tool stringer -type=MismatchEnum -output=mismatch_string.go

type MismatchEnum int

const (
	_ MismatchEnum = iota // skip zero value, use it as a default (invalid) value for MismatchEnum

	MismatchDuplicateProperty
	MismatchUnmatchedTarget
	MismatchUnmatchedSource
	MismatchIncompatibleTypes

	// MismatchTotal is a constant that represents the total number of mismatches defined
	MismatchTotal = int(iota)
)
