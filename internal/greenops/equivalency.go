package greenops

import "math"

// Equivalencies converts input to kilograms and expresses it as kilometres
// driven, smartphones charged, tree seedlings and days of home electricity.
//
// Inputs below MinEquivalencyThresholdKg yield an empty output with InputKg
// set and no error. Normalization errors are returned with an empty output.
func (f *Formatter) Equivalencies(input CarbonInput) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{IsEmpty: true}, err
	}

	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	km := kg / EPAKmDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	trees := kg / EPATreeSeedlingFactor
	homeDays := kg / EPAHomeDayFactor

	for _, v := range []float64{km, phones, trees, homeDays} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
		}
	}

	kmFormatted := f.formatEquivalencyValue(km)
	phonesFormatted := f.formatEquivalencyValue(phones)

	results := []EquivalencyResult{
		{
			Type:           EquivalencyKmDriven,
			Value:          km,
			FormattedValue: kmFormatted,
			Label:          f.T("km driven"),
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: phonesFormatted,
			Label:          f.T("smartphones charged"),
		},
		{
			Type:           EquivalencyTreeSeedlings,
			Value:          trees,
			FormattedValue: f.FormatFloat(trees, 1),
			Label:          f.T("tree seedlings grown for 10 years"),
		},
		{
			Type:           EquivalencyHomeDays,
			Value:          homeDays,
			FormattedValue: f.FormatFloat(homeDays, 1),
			Label:          f.T("days of home electricity"),
		},
	}

	return EquivalencyOutput{
		InputKg:     kg,
		Results:     results,
		DisplayText: f.T("Equivalent to driving ~%s km or charging ~%s smartphones", kmFormatted, phonesFormatted),
		CompactText: f.T("(≈ %s km, %s phones)", kmFormatted, phonesFormatted),
	}, nil
}

// String renders the output's display text, or nothing when empty.
func (o EquivalencyOutput) String() string {
	if o.IsEmpty {
		return ""
	}
	return o.DisplayText
}

func (f *Formatter) formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return f.FormatLarge(v)
	}
	return f.FormatNumber(int64(math.Round(v)))
}
