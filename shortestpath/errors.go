package shortestpath

import "errors"

// ErrInvalidWeightType is returned when the caller passes a weight type
// outside {distance, travel_time}.
var ErrInvalidWeightType = errors.New("shortestpath: invalid weight type")
