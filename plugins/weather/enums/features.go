package enums

// WeatherFeature describes capability flags of a weather entity.
type WeatherFeature int

const (
	// FeatureForecastDaily describes daily forecast support.
	FeatureForecastDaily WeatherFeature = 1 << iota
	// FeatureForecastTwiceDaily describes twice daily forecast support.
	FeatureForecastTwiceDaily
	// FeatureForecastHourly describes hourly forecast support.
	FeatureForecastHourly
)

// Has checks whether feature set contains the feature.
func (f WeatherFeature) Has(feature WeatherFeature) bool {
	return f&feature == feature
}

// Modes returns forecast modes covered by the feature set.
func (f WeatherFeature) Modes() []ForecastMode {
	modes := make([]ForecastMode, 0, 2)
	if f.Has(FeatureForecastDaily) {
		modes = append(modes, ForecastDaily)
	}
	if f.Has(FeatureForecastHourly) {
		modes = append(modes, ForecastHourly)
	}

	return modes
}
