// Package model defines the core domain entities for the truckload service.
package model

// Truck describes the loadable floor of a single truck.
// Width runs across the truck, Length from the front to the doors.
//
// @Description Truck floor dimensions in meters
type Truck struct {
	Width  float64 `json:"width" bson:"width" toml:"width" example:"2.4"`
	Length float64 `json:"length" bson:"length" toml:"length" example:"13.2"`
}

// Area returns the floor area of the truck.
func (t Truck) Area() float64 {
	return t.Width * t.Length
}

// DefaultTruck is the standard semi-trailer floor.
var DefaultTruck = Truck{Width: 2.4, Length: 13.2}

// BoxType is an immutable description of a kind of box.
//
// @Description Box type definition
type BoxType struct {
	ID        string  `json:"id" bson:"id" example:"american"`
	Name      string  `json:"name" bson:"name" example:"American"`
	Width     float64 `json:"width" bson:"width" example:"1.0"`
	Length    float64 `json:"length" bson:"length" example:"1.2"`
	Stackable bool    `json:"stackable" bson:"stackable"`
}

// BoxLine is one entry of a load request: Count boxes of one type in one
// stackability mode.
//
// @Description Requested boxes of a single type and stackability
type BoxLine struct {
	BoxTypeID string  `json:"box_type_id" bson:"box_type_id" toml:"id" example:"american"`
	Name      string  `json:"name,omitempty" bson:"name,omitempty" toml:"name" example:"American"`
	Width     float64 `json:"width" bson:"width" toml:"width" example:"1.0"`
	Length    float64 `json:"length" bson:"length" toml:"length" example:"1.2"`
	Stackable bool    `json:"stackable" bson:"stackable" toml:"stackable"`
	Count     int     `json:"count" bson:"count" toml:"count" example:"10"`
}

// LoadRequest is the full input of one optimization.
type LoadRequest struct {
	Truck Truck     `json:"truck" bson:"truck" toml:"truck"`
	Lines []BoxLine `json:"requested" bson:"requested" toml:"requested"`
}

// TotalRequested returns the number of box instances the request asks for.
// Negative counts are ignored.
func (r LoadRequest) TotalRequested() int {
	total := 0
	for _, l := range r.Lines {
		if l.Count > 0 {
			total += l.Count
		}
	}
	return total
}

// PlacedBox is a box positioned in the truck.
// SupportIndex points at the floor box (index into LoadPlan.Placed) a stacked
// box rests on and is -1 for floor boxes.
//
// @Description A placed box; coordinates in meters from the front-left corner
type PlacedBox struct {
	BoxTypeID    string  `json:"box_type_id" bson:"box_type_id" example:"american"`
	X            float64 `json:"x" bson:"x" example:"0"`
	Y            float64 `json:"y" bson:"y" example:"0"`
	W            float64 `json:"w" bson:"w" example:"1.0"`
	H            float64 `json:"h" bson:"h" example:"1.2"`
	Stackable    bool    `json:"stackable" bson:"stackable"`
	Rotated      bool    `json:"rotated" bson:"rotated"`
	Stacked      bool    `json:"stacked" bson:"stacked"`
	SupportIndex int     `json:"support_index" bson:"support_index" example:"-1"`
}

// Area returns the footprint of the box.
func (p PlacedBox) Area() float64 {
	return p.W * p.H
}

// Stats summarizes a load plan.
//
// @Description Load plan statistics
type Stats struct {
	TotalPlaced        int     `json:"total_placed" bson:"total_placed" example:"40"`
	FloorCount         int     `json:"floor_count" bson:"floor_count" example:"22"`
	StackedCount       int     `json:"stacked_count" bson:"stacked_count" example:"18"`
	NotPlaced          int     `json:"not_placed" bson:"not_placed" example:"0"`
	TotalRequested     int     `json:"total_requested" bson:"total_requested" example:"40"`
	UtilizationPercent float64 `json:"utilization_percent" bson:"utilization_percent" example:"83.3"`
}

// Shortfall is the unmet count for one (box type, stackability) pair.
type Shortfall struct {
	BoxTypeID string `json:"box_type_id" bson:"box_type_id"`
	Stackable bool   `json:"stackable" bson:"stackable"`
	Requested int    `json:"requested" bson:"requested"`
	Placed    int    `json:"placed" bson:"placed"`
	Missing   int    `json:"missing" bson:"missing"`
}

// TypeSummary breaks placements down per box type.
type TypeSummary struct {
	BoxTypeID string  `json:"box_type_id" bson:"box_type_id"`
	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	Width     float64 `json:"width" bson:"width"`
	Length    float64 `json:"length" bson:"length"`
	Requested int     `json:"requested" bson:"requested"`
	Floor     int     `json:"floor" bson:"floor"`
	Stacked   int     `json:"stacked" bson:"stacked"`
}

// Rejection reports boxes that were refused before packing.
type Rejection struct {
	BoxTypeID string `json:"box_type_id" bson:"box_type_id"`
	Stackable bool   `json:"stackable" bson:"stackable"`
	Count     int    `json:"count" bson:"count"`
	Reason    string `json:"reason" bson:"reason" example:"oversized_box"`
}

// StrategyOutcome reports how a single ordering strategy performed.
type StrategyOutcome struct {
	Name               string  `json:"name" bson:"name" example:"area_desc"`
	UtilizationPercent float64 `json:"utilization_percent" bson:"utilization_percent"`
	Placed             int     `json:"placed" bson:"placed"`
	Unplaced           int     `json:"unplaced" bson:"unplaced"`
	Failed             bool    `json:"failed,omitempty" bson:"failed,omitempty"`
	Error              string  `json:"error,omitempty" bson:"error,omitempty"`
}

// LoadPlan is the result of an optimization.
//
// @Description Complete load plan with placements and statistics
type LoadPlan struct {
	Truck      Truck             `json:"truck" bson:"truck"`
	Placed     []PlacedBox       `json:"placed" bson:"placed"`
	Stats      Stats             `json:"stats" bson:"stats"`
	Shortfall  []Shortfall       `json:"shortfall" bson:"shortfall"`
	Types      []TypeSummary     `json:"types" bson:"types"`
	Rejected   []Rejection       `json:"rejected,omitempty" bson:"rejected,omitempty"`
	Strategy   string            `json:"strategy,omitempty" bson:"strategy,omitempty" example:"area_desc"`
	Strategies []StrategyOutcome `json:"strategies,omitempty" bson:"strategies,omitempty"`
}

// EmptyPlan returns a plan with no placements for the given truck.
func EmptyPlan(truck Truck) LoadPlan {
	return LoadPlan{
		Truck:     truck,
		Placed:    []PlacedBox{},
		Shortfall: []Shortfall{},
		Types:     []TypeSummary{},
	}
}
