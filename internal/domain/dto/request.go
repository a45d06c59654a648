// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/i18n"
)

// TruckRequest overrides the configured truck floor.
//
// @Description Truck floor in meters
type TruckRequest struct {
	Width  float64 `json:"width" toml:"width" example:"2.4"`
	Length float64 `json:"length" toml:"length" example:"13.2"`
} // @name TruckRequest

// BoxLineRequest asks for Count boxes of one type in one stackability mode.
// Width and Length may be omitted for built-in box types.
//
// @Description Requested boxes of one type
type BoxLineRequest struct {
	BoxTypeID string  `json:"box_type_id" example:"american"`
	Name      string  `json:"name,omitempty" example:"American"`
	Width     float64 `json:"width,omitempty" example:"1.0"`
	Length    float64 `json:"length,omitempty" example:"1.2"`
	Stackable bool    `json:"stackable"`
	Count     int     `json:"count" example:"10"`
} // @name BoxLineRequest

// CustomBoxRequest describes a custom box type with both stackability counts.
//
// @Description Custom box type with stackable and non-stackable counts
type CustomBoxRequest struct {
	ID           string  `json:"id" toml:"id" example:"crate"`
	Name         string  `json:"name,omitempty" toml:"name" example:"Crate"`
	Width        float64 `json:"width" toml:"width" example:"0.8"`
	Length       float64 `json:"length" toml:"length" example:"0.6"`
	Stackable    int     `json:"stackable" toml:"stackable" example:"4"`
	NonStackable int     `json:"non_stackable" toml:"non_stackable" example:"2"`
} // @name CustomBoxRequest

// OptimizeRequest represents the JSON request body for the optimize endpoint.
//
// Boxes can be given as generic lines, as counts of the built-in types,
// as custom boxes, or any mix of the three. Truck defaults to the
// server-configured truck.
//
// @Description Request to plan the floor of a truck
// @Example {"american_stackable": 20, "european_non_stackable": 4}
type OptimizeRequest struct {
	Truck                *TruckRequest      `json:"truck,omitempty"`
	Requested            []BoxLineRequest   `json:"requested,omitempty"`
	AmericanStackable    int                `json:"american_stackable,omitempty" example:"20"`
	AmericanNonStackable int                `json:"american_non_stackable,omitempty" example:"0"`
	EuropeanStackable    int                `json:"european_stackable,omitempty" example:"0"`
	EuropeanNonStackable int                `json:"european_non_stackable,omitempty" example:"4"`
	CustomBoxes          []CustomBoxRequest `json:"custom_boxes,omitempty"`
} // @name OptimizeRequest

// ValidationError represents a field validation error.
// Key is the translation key of the message.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func negativeCount(field string) *ValidationError {
	return &ValidationError{Field: field, Key: i18n.ErrKeyNegativeCount, Message: "must not be negative"}
}

func missingID(field string) *ValidationError {
	return &ValidationError{Field: field, Key: i18n.ErrKeyMissingBoxTypeID, Message: "box type id is required"}
}

// Validate performs custom validation on the request.
// Returns the first ValidationError found, nil otherwise.
func (r *OptimizeRequest) Validate() error {
	legacy := []struct {
		field string
		count int
	}{
		{"american_stackable", r.AmericanStackable},
		{"american_non_stackable", r.AmericanNonStackable},
		{"european_stackable", r.EuropeanStackable},
		{"european_non_stackable", r.EuropeanNonStackable},
	}
	for _, l := range legacy {
		if l.count < 0 {
			return negativeCount(l.field)
		}
	}

	for i, line := range r.Requested {
		if line.BoxTypeID == "" {
			return missingID(fmt.Sprintf("requested[%d].box_type_id", i))
		}
		if line.Count < 0 {
			return negativeCount(fmt.Sprintf("requested[%d].count", i))
		}
	}

	for i, box := range r.CustomBoxes {
		if box.ID == "" {
			return missingID(fmt.Sprintf("custom_boxes[%d].id", i))
		}
		if box.Stackable < 0 {
			return negativeCount(fmt.Sprintf("custom_boxes[%d].stackable", i))
		}
		if box.NonStackable < 0 {
			return negativeCount(fmt.Sprintf("custom_boxes[%d].non_stackable", i))
		}
	}
	return nil
}

// ToLoadRequest converts the request into the engine input.
//
// Lines come out in a fixed order: built-in counts (American stackable,
// American non-stackable, European stackable, European non-stackable),
// then generic lines, then custom boxes. Built-in counts of zero are left
// out. Box dimensions are not checked here; invalid boxes are reported by
// the engine as unplaced.
func (r *OptimizeRequest) ToLoadRequest(defaultTruck model.Truck) (model.LoadRequest, error) {
	if err := r.Validate(); err != nil {
		return model.LoadRequest{}, err
	}

	truck := defaultTruck
	if r.Truck != nil {
		truck = model.Truck{Width: r.Truck.Width, Length: r.Truck.Length}
	}

	res := resolver{seen: make(map[string]model.BoxType)}
	lines := make([]model.BoxLine, 0, 4+len(r.Requested)+2*len(r.CustomBoxes))

	for _, l := range []struct {
		bt        model.BoxType
		stackable bool
		count     int
	}{
		{model.American, true, r.AmericanStackable},
		{model.American, false, r.AmericanNonStackable},
		{model.European, true, r.EuropeanStackable},
		{model.European, false, r.EuropeanNonStackable},
	} {
		if l.count == 0 {
			continue
		}
		if err := res.record("", l.bt); err != nil {
			return model.LoadRequest{}, err
		}
		lines = append(lines, l.bt.Line(l.stackable, l.count))
	}

	for i, line := range r.Requested {
		field := fmt.Sprintf("requested[%d]", i)
		bt, err := res.resolve(field, line.BoxTypeID, line.Name, line.Width, line.Length)
		if err != nil {
			return model.LoadRequest{}, err
		}
		lines = append(lines, bt.Line(line.Stackable, line.Count))
	}

	for i, box := range r.CustomBoxes {
		field := fmt.Sprintf("custom_boxes[%d]", i)
		bt, err := res.resolve(field, box.ID, box.Name, box.Width, box.Length)
		if err != nil {
			return model.LoadRequest{}, err
		}
		switch {
		case box.Stackable == 0 && box.NonStackable == 0:
			lines = append(lines, bt.Line(true, 0))
		default:
			if box.Stackable > 0 {
				lines = append(lines, bt.Line(true, box.Stackable))
			}
			if box.NonStackable > 0 {
				lines = append(lines, bt.Line(false, box.NonStackable))
			}
		}
	}

	return model.LoadRequest{Truck: truck, Lines: lines}, nil
}

// resolver turns box type references into full box types and makes sure an
// id is never used with two footprints in one request.
type resolver struct {
	seen map[string]model.BoxType
}

func (r *resolver) resolve(field, id, name string, width, length float64) (model.BoxType, error) {
	var bt model.BoxType
	if width == 0 && length == 0 {
		builtin, ok := model.LookupBoxType(id)
		if !ok {
			if prev, seen := r.seen[id]; seen {
				return prev, nil
			}
			return model.BoxType{}, &ValidationError{
				Field:   field,
				Key:     i18n.ErrKeyUnknownBoxType,
				Message: fmt.Sprintf("unknown box type %q without dimensions", id),
			}
		}
		bt = builtin
	} else {
		bt = model.BoxType{ID: id, Name: name, Width: width, Length: length}
		if builtin, ok := model.LookupBoxType(id); ok && bt.Name == "" {
			bt.Name = builtin.Name
		}
	}
	if name != "" {
		bt.Name = name
	}
	return bt, r.record(field, bt)
}

func (r *resolver) record(field string, bt model.BoxType) error {
	if prev, ok := r.seen[bt.ID]; ok {
		if !prev.SameFootprint(bt) {
			return &ValidationError{
				Field:   field,
				Key:     i18n.ErrKeyConflictingBoxType,
				Message: fmt.Sprintf("box type %q used with different dimensions", bt.ID),
			}
		}
		return nil
	}
	r.seen[bt.ID] = bt
	return nil
}
