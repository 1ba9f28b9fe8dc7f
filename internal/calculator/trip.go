package calculator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/rshade/carbonroute/internal/emission"
)

// TripRequest is one calculation request.
type TripRequest struct {
	Origin      string        `json:"origin"      validate:"max=128"`
	Destination string        `json:"destination" validate:"max=128"`
	DistanceKm  float64       `json:"distanceKm"`
	Mode        emission.Mode `json:"mode"        validate:"required"`
}

// TripResult bundles everything derived from a TripRequest.
type TripResult struct {
	Origin      string        `json:"origin,omitempty"`
	Destination string        `json:"destination,omitempty"`
	DistanceKm  float64       `json:"distanceKm"`
	Mode        emission.Mode `json:"mode"`
	EmissionKg  float64       `json:"emissionKg"`

	BaselineMode       emission.Mode `json:"baselineMode"`
	BaselineEmissionKg float64       `json:"baselineEmissionKg"`

	// Savings is nil when Mode is the baseline mode.
	Savings *Savings `json:"savings,omitempty"`

	Ranking []ModeEmission `json:"ranking"`
	Credits float64        `json:"credits"`
	Price   PriceEstimate  `json:"price"`
}

//nolint:gochecknoglobals // validator caches struct metadata; one instance is the documented usage.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Estimate runs the full pipeline for req: the selected emission, savings
// against the baseline mode, the ranking of every mode, and the credit
// quantity and price of the selected emission.
func (c *Calculator) Estimate(req TripRequest) (*TripResult, error) {
	if err := validateDistance(req.DistanceKm); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s failed %q", ErrInvalidRequest, verrs[0].Field(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	selected, err := c.EmissionFor(req.DistanceKm, req.Mode)
	if err != nil {
		return nil, err
	}

	baselineMode := c.model.BaselineMode()
	baseline, err := c.EmissionFor(req.DistanceKm, baselineMode)
	if err != nil {
		return nil, err
	}

	ranking, err := c.AllModesRanked(req.DistanceKm)
	if err != nil {
		return nil, err
	}

	result := &TripResult{
		Origin:             req.Origin,
		Destination:        req.Destination,
		DistanceKm:         req.DistanceKm,
		Mode:               req.Mode,
		EmissionKg:         selected,
		BaselineMode:       baselineMode,
		BaselineEmissionKg: baseline,
		Ranking:            ranking,
	}

	if req.Mode != baselineMode {
		savings := c.SavingsVsBaseline(selected, baseline)
		result.Savings = &savings
	}

	result.Credits = c.CreditsFor(selected)
	result.Price = c.PriceEstimate(result.Credits)

	return result, nil
}
