//+build !release

package mocks

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
)

// FakeWeatherData is a fake provider snapshot.
type FakeWeatherData struct {
	ConditionValue           *string
	TemperatureValue         *float64
	ApparentTemperatureValue *float64
	PressureValue            *float64
	HumidityValue            *float64
	WindBearingValue         *float64
	WindGustSpeedValue       *float64
	WindSpeedValue           *float64
	CloudCoverageValue       *float64
	UVIndexValue             *float64
	PrecipitationValue       *float64
	RainValue                *float64
	SnowValue                *float64
	WindBearingLabelValue    *string
	StormValue               *bool
	GeomagneticValue         *float64
	WaterTemperatureValue    *float64
	TemperatureLowValue      *float64
	PollenBirchValue         *float64
	PollenGrassValue         *float64
	PollenRagweedValue       *float64
	RoadConditionValue       *string
	Days                     []*FakeWeatherData
	Hourly                   []weather.Forecast
	Daily                    []weather.Forecast
}

func (f *FakeWeatherData) Condition() *string { return f.ConditionValue }
func (f *FakeWeatherData) Temperature() *float64 { return f.TemperatureValue }
func (f *FakeWeatherData) ApparentTemperature() *float64 { return f.ApparentTemperatureValue }
func (f *FakeWeatherData) Pressure() *float64 { return f.PressureValue }
func (f *FakeWeatherData) Humidity() *float64 { return f.HumidityValue }
func (f *FakeWeatherData) WindBearing() *float64 { return f.WindBearingValue }
func (f *FakeWeatherData) WindGustSpeed() *float64 { return f.WindGustSpeedValue }
func (f *FakeWeatherData) WindSpeed() *float64 { return f.WindSpeedValue }
func (f *FakeWeatherData) CloudCoverage() *float64 { return f.CloudCoverageValue }
func (f *FakeWeatherData) UVIndex() *float64 { return f.UVIndexValue }
func (f *FakeWeatherData) PrecipitationAmount() *float64 { return f.PrecipitationValue }
func (f *FakeWeatherData) RainAmount() *float64 { return f.RainValue }
func (f *FakeWeatherData) SnowAmount() *float64 { return f.SnowValue }
func (f *FakeWeatherData) WindBearingLabel() *string { return f.WindBearingLabelValue }
func (f *FakeWeatherData) IsStorm() *bool { return f.StormValue }
func (f *FakeWeatherData) GeomagneticField() *float64 { return f.GeomagneticValue }
func (f *FakeWeatherData) WaterTemperature() *float64 { return f.WaterTemperatureValue }
func (f *FakeWeatherData) TemperatureLow() *float64 { return f.TemperatureLowValue }
func (f *FakeWeatherData) PollenBirch() *float64 { return f.PollenBirchValue }
func (f *FakeWeatherData) PollenGrass() *float64 { return f.PollenGrassValue }
func (f *FakeWeatherData) PollenRagweed() *float64 { return f.PollenRagweedValue }
func (f *FakeWeatherData) RoadCondition() *string { return f.RoadConditionValue }

// Day returns configured daily snapshot.
func (f *FakeWeatherData) Day(day int) weather.ISensorData {
	if day < 0 || day >= len(f.Days) || nil == f.Days[day] {
		return nil
	}

	return f.Days[day]
}

// Forecast returns a copy of the configured forecast.
func (f *FakeWeatherData) Forecast(mode enums.ForecastMode) []weather.Forecast {
	var src []weather.Forecast
	switch mode {
	case enums.ForecastHourly:
		src = f.Hourly
	case enums.ForecastDaily:
		src = f.Daily
	}

	if nil == src {
		return nil
	}

	result := make([]weather.Forecast, len(src))
	copy(result, src)
	return result
}

// FakeNewWeatherData creates a snapshot with a few known values.
func FakeNewWeatherData(temperature float64, condition string) *FakeWeatherData {
	return &FakeWeatherData{
		ConditionValue:   &condition,
		TemperatureValue: &temperature,
	}
}

type fakeProviderClient struct {
	sync.Mutex
	data    weather.ISensorData
	err     error
	block   bool
	calls   int32
	checked int32
	lastLoc weather.Location
}

func (f *fakeProviderClient) Check(ctx context.Context, loc weather.Location) error {
	atomic.AddInt32(&f.checked, 1)
	f.Lock()
	f.lastLoc = loc
	err, block := f.err, f.block
	f.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}

	return err
}

func (f *fakeProviderClient) Fetch(ctx context.Context, loc weather.Location) (weather.ISensorData, error) {
	atomic.AddInt32(&f.calls, 1)
	f.Lock()
	f.lastLoc = loc
	data, err, block := f.data, f.err, f.block
	f.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	if err != nil {
		return nil, err
	}

	return data, nil
}

// SetData changes data returned by the next fetch.
func (f *fakeProviderClient) SetData(data weather.ISensorData) {
	f.Lock()
	defer f.Unlock()
	f.data = data
}

// SetError changes error returned by the next calls.
func (f *fakeProviderClient) SetError(err error) {
	f.Lock()
	defer f.Unlock()
	f.err = err
}

// SetBlocking makes calls wait for context cancellation.
func (f *fakeProviderClient) SetBlocking(block bool) {
	f.Lock()
	defer f.Unlock()
	f.block = block
}

// Fetches returns number of fetch calls.
func (f *fakeProviderClient) Fetches() int {
	return int(atomic.LoadInt32(&f.calls))
}

// Checks returns number of check calls.
func (f *fakeProviderClient) Checks() int {
	return int(atomic.LoadInt32(&f.checked))
}

// LastLocation returns location of the latest call.
func (f *fakeProviderClient) LastLocation() weather.Location {
	f.Lock()
	defer f.Unlock()
	return f.lastLoc
}

// FakeNewProviderClient creates a fake weather provider client.
func FakeNewProviderClient(data weather.ISensorData, err error) *fakeProviderClient {
	return &fakeProviderClient{
		data: data,
		err:  err,
	}
}
