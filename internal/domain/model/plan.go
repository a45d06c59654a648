package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoredPlan is a load plan kept in the plan history together with the
// request that produced it.
//
// @Description Load plan stored in the plan history
type StoredPlan struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id" swaggertype:"string" example:"65b7f0c2e4b0a1a2b3c4d5e6"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	RequestID   string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Subject     string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Fingerprint string             `bson:"fingerprint" json:"fingerprint" example:"9f2c4a1b7e3d5f60"`
	Request     LoadRequest        `bson:"request" json:"request"`
	Plan        LoadPlan           `bson:"plan" json:"plan"`
}

// PlanSummary is the list view of a stored plan.
//
// @Description Stored plan summary
type PlanSummary struct {
	ID                 string    `json:"id" example:"65b7f0c2e4b0a1a2b3c4d5e6"`
	CreatedAt          time.Time `json:"created_at"`
	Strategy           string    `json:"strategy,omitempty" example:"area_desc"`
	TotalRequested     int       `json:"total_requested" example:"40"`
	TotalPlaced        int       `json:"total_placed" example:"40"`
	UtilizationPercent float64   `json:"utilization_percent" example:"83.3"`
}

// Summary returns the list view of p.
func (p StoredPlan) Summary() PlanSummary {
	return PlanSummary{
		ID:                 p.ID.Hex(),
		CreatedAt:          p.CreatedAt,
		Strategy:           p.Plan.Strategy,
		TotalRequested:     p.Plan.Stats.TotalRequested,
		TotalPlaced:        p.Plan.Stats.TotalPlaced,
		UtilizationPercent: p.Plan.Stats.UtilizationPercent,
	}
}
