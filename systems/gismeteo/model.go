package gismeteo

import (
	"encoding/json"
	"time"
)

// API envelope.
type apiResponse struct {
	Meta struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"meta"`
	Response json.RawMessage `json:"response"`
}

// Value in Celsius.
type apiCelsius struct {
	C *float64 `json:"C"`
}

type apiTemperature struct {
	Air struct {
		C   *float64    `json:"C"`
		Max *apiCelsius `json:"max"`
		Min *apiCelsius `json:"min"`
	} `json:"air"`
	Comfort apiCelsius `json:"comfort"`
	Water   apiCelsius `json:"water"`
}

// Single observation or forecast period.
type apiEntry struct {
	Date struct {
		UTC  string `json:"UTC"`
		Unix int64  `json:"unix"`
	} `json:"date"`
	Kind        string         `json:"kind"`
	Icon        string         `json:"icon"`
	Storm       *bool          `json:"storm"`
	GM          *float64       `json:"gm"`
	Phenomenon  *int           `json:"phenomenon"`
	Temperature apiTemperature `json:"temperature"`
	Humidity    struct {
		Percent *float64 `json:"percent"`
	} `json:"humidity"`
	Pressure struct {
		MmHgAtm *float64 `json:"mm_hg_atm"`
	} `json:"pressure"`
	Wind struct {
		Speed struct {
			MS *float64 `json:"m_s"`
		} `json:"speed"`
		GustSpeed struct {
			MS *float64 `json:"m_s"`
		} `json:"gust_speed"`
		Direction struct {
			Degree *float64 `json:"degree"`
			Scale8 *int     `json:"scale_8"`
		} `json:"direction"`
	} `json:"wind"`
	Cloudiness struct {
		Type    *int     `json:"type"`
		Percent *float64 `json:"percent"`
	} `json:"cloudiness"`
	Precipitation struct {
		Type      *int     `json:"type"`
		Amount    *float64 `json:"amount"`
		Intensity *int     `json:"intensity"`
	} `json:"precipitation"`
	Radiation struct {
		UVBIndex *float64 `json:"uvb_index"`
	} `json:"radiation"`
	Pollen struct {
		Birch   *float64 `json:"birch"`
		Grass   *float64 `json:"grass"`
		Ragweed *float64 `json:"ragweed"`
	} `json:"pollen"`
	RoadCondition *string `json:"road_condition"`
}

// Returns period timestamp.
func (e *apiEntry) dateTime() time.Time {
	if e.Date.Unix > 0 {
		return time.Unix(e.Date.Unix, 0).UTC()
	}

	t, err := time.Parse("2006-01-02 15:04:05", e.Date.UTC)
	if err != nil {
		return time.Time{}
	}

	return t.UTC()
}

// Checks whether period is at night, based on the icon prefix.
func (e *apiEntry) isNight() bool {
	return len(e.Icon) > 0 && e.Icon[0] == 'n'
}
