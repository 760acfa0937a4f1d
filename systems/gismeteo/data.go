package gismeteo

import (
	"encoding/json"
	"time"

	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/pkg/errors"
)

// Data is an immutable snapshot of the provider data.
// Zero value is a valid snapshot where every value is unknown.
type Data struct {
	current *apiEntry
	hourly  []*apiEntry
	daily   []*apiEntry
	fetched time.Time
}

// NewEmptyData returns snapshot without any data.
func NewEmptyData() *Data {
	return &Data{}
}

// DataFromJSON builds a snapshot from raw API responses.
// Forecast responses might be nil.
func DataFromJSON(current, hourly, daily []byte) (*Data, error) {
	d := &Data{fetched: time.Now().UTC()}
	if nil != current {
		entry := &apiEntry{}
		if err := decodeResponse(current, entry); err != nil {
			return nil, errors.Wrap(err, "current")
		}
		d.current = entry
	}

	var err error
	if d.hourly, err = decodeList(hourly); err != nil {
		return nil, errors.Wrap(err, "hourly forecast")
	}

	if d.daily, err = decodeList(daily); err != nil {
		return nil, errors.Wrap(err, "daily forecast")
	}

	return d, nil
}

// Fetched returns snapshot creation time.
func (d *Data) Fetched() time.Time {
	return d.fetched
}

// Condition returns current weather condition.
func (d *Data) Condition() *string {
	return condition(d.current)
}

// Temperature returns current air temperature.
// Daily periods report their maximum.
func (d *Data) Temperature() *float64 {
	if nil == d.current {
		return nil
	}
	if nil != d.current.Temperature.Air.Max {
		return d.current.Temperature.Air.Max.C
	}
	return d.current.Temperature.Air.C
}

// TemperatureLow returns minimal temperature of the daily period.
func (d *Data) TemperatureLow() *float64 {
	if nil == d.current || nil == d.current.Temperature.Air.Min {
		return nil
	}
	return d.current.Temperature.Air.Min.C
}

// ApparentTemperature returns current "feels like" temperature.
func (d *Data) ApparentTemperature() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Temperature.Comfort.C
}

// WaterTemperature returns current water temperature.
func (d *Data) WaterTemperature() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Temperature.Water.C
}

// Pressure returns current pressure in mmHg.
func (d *Data) Pressure() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Pressure.MmHgAtm
}

// Humidity returns current humidity.
func (d *Data) Humidity() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Humidity.Percent
}

// WindBearing returns current wind direction in degrees.
func (d *Data) WindBearing() *float64 {
	if nil == d.current {
		return nil
	}
	return windBearing(d.current)
}

// WindBearingLabel returns current wind direction label.
func (d *Data) WindBearingLabel() *string {
	if nil == d.current {
		return nil
	}
	return windBearingLabel(d.current)
}

// WindGustSpeed returns current wind gust speed.
func (d *Data) WindGustSpeed() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Wind.GustSpeed.MS
}

// WindSpeed returns current wind speed.
func (d *Data) WindSpeed() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Wind.Speed.MS
}

// CloudCoverage returns current cloud coverage.
func (d *Data) CloudCoverage() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Cloudiness.Percent
}

// UVIndex returns current UV index.
func (d *Data) UVIndex() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Radiation.UVBIndex
}

// PrecipitationAmount returns current precipitation amount.
func (d *Data) PrecipitationAmount() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Precipitation.Amount
}

// RainAmount returns current rain amount.
func (d *Data) RainAmount() *float64 {
	return precipitationOf(d.current, precipitationRain)
}

// SnowAmount returns current snow amount.
func (d *Data) SnowAmount() *float64 {
	return precipitationOf(d.current, precipitationSnow)
}

// IsStorm returns current storm warning.
func (d *Data) IsStorm() *bool {
	if nil == d.current {
		return nil
	}
	return d.current.Storm
}

// GeomagneticField returns current geomagnetic field index.
func (d *Data) GeomagneticField() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.GM
}

// PollenBirch returns birch pollen level.
func (d *Data) PollenBirch() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Pollen.Birch
}

// PollenGrass returns grass pollen level.
func (d *Data) PollenGrass() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Pollen.Grass
}

// PollenRagweed returns ragweed pollen level.
func (d *Data) PollenRagweed() *float64 {
	if nil == d.current {
		return nil
	}
	return d.current.Pollen.Ragweed
}

// RoadCondition returns road condition reported by the provider.
func (d *Data) RoadCondition() *string {
	if nil == d.current {
		return nil
	}
	return d.current.RoadCondition
}

// Day returns snapshot of the daily forecast period.
// Snapshots of a single day don't have forecasts of their own.
func (d *Data) Day(day int) weather.ISensorData {
	if day < 0 || day >= len(d.daily) {
		return nil
	}

	return &Data{current: d.daily[day], fetched: d.fetched}
}

// Forecast returns forecast of the requested resolution.
// Result is built on every call, nil means there's no forecast yet.
func (d *Data) Forecast(mode enums.ForecastMode) []weather.Forecast {
	var src []*apiEntry
	switch mode {
	case enums.ForecastHourly:
		src = d.hourly
	case enums.ForecastDaily:
		src = d.daily
	}

	if 0 == len(src) {
		return nil
	}

	result := make([]weather.Forecast, 0, len(src))
	for _, v := range src {
		f := weather.Forecast{
			DateTime:            v.dateTime(),
			Condition:           condition(v),
			Temperature:         v.Temperature.Air.C,
			ApparentTemperature: v.Temperature.Comfort.C,
			Humidity:            v.Humidity.Percent,
			Pressure:            v.Pressure.MmHgAtm,
			Precipitation:       v.Precipitation.Amount,
			WindSpeed:           v.Wind.Speed.MS,
			WindGustSpeed:       v.Wind.GustSpeed.MS,
			WindBearing:         windBearing(v),
			CloudCoverage:       v.Cloudiness.Percent,
			UVIndex:             v.Radiation.UVBIndex,
		}

		if nil != v.Temperature.Air.Max {
			f.Temperature = v.Temperature.Air.Max.C
		}

		if nil != v.Temperature.Air.Min {
			f.TemperatureLow = v.Temperature.Air.Min.C
		}

		result = append(result, f)
	}

	return result
}

// Decodes API envelope into the target.
func decodeResponse(raw []byte, target interface{}) error {
	env := &apiResponse{}
	if err := json.Unmarshal(raw, env); err != nil {
		return err
	}

	if "" != env.Meta.Code && metaCodeOkay != env.Meta.Code {
		return &ErrAPI{Code: env.Meta.Code, Message: env.Meta.Message}
	}

	if 0 == len(env.Response) || "null" == string(env.Response) {
		return &ErrEmptyResponse{}
	}

	return json.Unmarshal(env.Response, target)
}

// Decodes list of periods.
func decodeList(raw []byte) ([]*apiEntry, error) {
	if nil == raw {
		return nil, nil
	}

	list := make([]*apiEntry, 0)
	if err := decodeResponse(raw, &list); err != nil {
		return nil, err
	}

	return list, nil
}
