package calculation

import "time"

// nowFunc returns the current time; sweeps use it only to log elapsed time.
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }
