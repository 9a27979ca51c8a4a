package planner

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrBadCoordinate   = errors.New("coordinate is not finite")
	ErrBadVisitMinutes = errors.New("visit minutes must be positive")
)

// CheckPoint reports a contract violation by whoever produced p.
func CheckPoint(p PointOfInterest) error {
	if !finite(p.Location.Lat) || !finite(p.Location.Lng) {
		return fmt.Errorf("poi %q: %w", p.ID, ErrBadCoordinate)
	}
	if p.VisitMinutes <= 0 {
		return fmt.Errorf("poi %q: %w", p.ID, ErrBadVisitMinutes)
	}
	return nil
}

// Validate splits points into the ones the planner accepts and the errors for
// the ones it does not. Order of valid points is preserved.
func Validate(points []PointOfInterest) ([]PointOfInterest, []error) {
	valid := make([]PointOfInterest, 0, len(points))
	var errs []error
	for _, p := range points {
		if err := CheckPoint(p); err != nil {
			errs = append(errs, err)
			continue
		}
		valid = append(valid, p)
	}
	return valid, errs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
