package models

import "time"

// ProgressLog is an append-only body-measurement time series.
type ProgressLog struct {
	ID                int64            `json:"id"`
	UserID            int64            `json:"user_id"`
	Date              time.Time        `json:"date"`
	Weight            *float64         `json:"weight"`
	BodyMeasurements  BodyMeasurements `json:"body_measurements"`
	BodyFatPercentage *float64         `json:"body_fat_percentage"`
	MuscleMass        *float64         `json:"muscle_mass"`
	Notes             *string          `json:"notes"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

type BodyMeasurements struct {
	Chest  *float64 `json:"chest,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
	Biceps *float64 `json:"biceps,omitempty"`
	Thighs *float64 `json:"thighs,omitempty"`
}

type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight *float64  `json:"weight"`
}

// MeasurementPoint is one dated set of body measurements, shaped for the
// measurements trend chart.
type MeasurementPoint struct {
	Date             time.Time        `json:"date"`
	BodyMeasurements BodyMeasurements `json:"body_measurements"`
}
