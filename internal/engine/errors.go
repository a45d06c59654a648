package engine

import "errors"

var (
	// ErrInvalidTruckDimensions is returned when the truck width or length is
	// not a positive finite number. Nothing is computed.
	ErrInvalidTruckDimensions = errors.New("invalid truck dimensions")
	// ErrInvalidBoxDimensions marks a box line whose sides are not positive
	// finite numbers or exceed the configured maximum side.
	ErrInvalidBoxDimensions = errors.New("invalid box dimensions")
	// ErrOversizedBox marks a box line that fits the truck in neither orientation.
	ErrOversizedBox = errors.New("box does not fit the truck in any orientation")
	// ErrNegativeCount is returned when a box line requests a negative count.
	ErrNegativeCount = errors.New("negative box count")
	// ErrAllStrategiesFailed is returned when no ordering strategy produced a layout.
	ErrAllStrategiesFailed = errors.New("all packing strategies failed")

	errBookkeeping = errors.New("free space bookkeeping violated")
)

// Rejection reasons reported in model.Rejection.
const (
	ReasonInvalidDimensions = "invalid_box_dimensions"
	ReasonOversized         = "oversized_box"
)

// RejectionReason maps a box line error to the reason code reported to callers.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrOversizedBox):
		return ReasonOversized
	case errors.Is(err, ErrInvalidBoxDimensions):
		return ReasonInvalidDimensions
	default:
		return ""
	}
}
