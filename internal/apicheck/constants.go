package apicheck

// HTTP status code constants.
const (
	StatusOK         = 200
	StatusBadRequest = 400
	StatusNotFound   = 404
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	PercentageMultiplier = 100
)

// Constants for title variant cases.
const (
	caseVariantOriginal = 0
	caseVariantUpper    = 1
	caseVariantLower    = 2
	caseVariantPadded   = 3
	caseVariantCount    = 4
)
