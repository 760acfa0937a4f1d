package gismeteo

import (
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
)

// Converts provider data into a weather condition.
// Storm wins over precipitation, precipitation wins over fog,
// fog wins over cloudiness.
func condition(e *apiEntry) *string {
	if nil == e {
		return nil
	}

	var cond string
	if nil != e.Cloudiness.Type {
		switch *e.Cloudiness.Type {
		case cloudinessClear:
			cond = enums.ConditionSunny
			if e.isNight() {
				cond = enums.ConditionClearNight
			}
		case cloudinessLight, cloudinessVariable:
			cond = enums.ConditionPartlyCloudy
		case cloudinessCloudy, cloudinessOvercast:
			cond = enums.ConditionCloudy
		}
	}

	if nil != e.Phenomenon && conditionFogClasses[*e.Phenomenon] {
		cond = enums.ConditionFog
	}

	precipitation := precipitationNone
	if nil != e.Precipitation.Type {
		precipitation = *e.Precipitation.Type
	}

	switch precipitation {
	case precipitationRain:
		cond = enums.ConditionRainy
		if nil != e.Precipitation.Intensity && *e.Precipitation.Intensity >= precipitationIntensityHeavy {
			cond = enums.ConditionPouring
		}
	case precipitationSnow:
		cond = enums.ConditionSnowy
	case precipitationMixed:
		cond = enums.ConditionSnowyRainy
	}

	if nil != e.Storm && *e.Storm {
		cond = enums.ConditionLightning
		if precipitation != precipitationNone {
			cond = enums.ConditionLightningRainy
		}
	}

	if "" == cond {
		return nil
	}

	return &cond
}

// Returns wind bearing, calm wind has no bearing.
func windBearing(e *apiEntry) *float64 {
	if nil != e.Wind.Direction.Scale8 && 0 == *e.Wind.Direction.Scale8 {
		return nil
	}

	return e.Wind.Direction.Degree
}

// Returns wind bearing label.
func windBearingLabel(e *apiEntry) *string {
	s := e.Wind.Direction.Scale8
	if nil == s || *s < 0 || *s >= len(windBearingLabels) {
		return nil
	}

	label := windBearingLabels[*s]
	return &label
}

// Returns precipitation amount if it contains requested kind.
func precipitationOf(e *apiEntry, kind int) *float64 {
	if nil == e || nil == e.Precipitation.Type {
		return nil
	}

	t := *e.Precipitation.Type
	if t == kind || t == precipitationMixed {
		return e.Precipitation.Amount
	}

	zero := 0.0
	return &zero
}
