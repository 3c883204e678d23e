package samples

import "time"

// HTTP status code constants.
const (
	StatusOK = 200
)

// Runner configuration constants.
const (
	processingDelay      = 2 * time.Second
	PercentageMultiplier = 100
)
