package gismeteo

const fixtureCurrent = `{
  "meta": {"message": "", "code": "200"},
  "response": {
    "date": {"UTC": "2024-01-15 09:00:00", "unix": 1705309200},
    "kind": "Obs",
    "icon": "d_c2_r1",
    "storm": false,
    "gm": 2,
    "phenomenon": 3,
    "temperature": {"air": {"C": -3.5}, "comfort": {"C": -8.1}, "water": {"C": 2.2}},
    "humidity": {"percent": 86},
    "pressure": {"mm_hg_atm": 748},
    "wind": {
      "speed": {"m_s": 4},
      "gust_speed": {"m_s": 9},
      "direction": {"degree": 225, "scale_8": 6}
    },
    "cloudiness": {"type": 2, "percent": 70},
    "precipitation": {"type": 1, "amount": 0.4, "intensity": 1},
    "radiation": {"uvb_index": 1},
    "pollen": {"birch": 1, "grass": 2, "ragweed": 0},
    "road_condition": "wet"
  }
}`

const fixtureHourly = `{
  "meta": {"message": "", "code": "200"},
  "response": [
    {
      "date": {"UTC": "2024-01-15 12:00:00", "unix": 1705320000},
      "icon": "d_c0",
      "temperature": {"air": {"C": -2}, "comfort": {"C": -6}},
      "humidity": {"percent": 80},
      "pressure": {"mm_hg_atm": 749},
      "wind": {"speed": {"m_s": 3}, "direction": {"degree": 180, "scale_8": 5}},
      "cloudiness": {"type": 0, "percent": 0},
      "precipitation": {"type": 0, "amount": 0, "intensity": 0}
    },
    {
      "date": {"UTC": "2024-01-15 15:00:00", "unix": 1705330800},
      "icon": "n_c3_s2",
      "temperature": {"air": {"C": -4}, "comfort": {"C": -9}},
      "humidity": {"percent": 90},
      "pressure": {"mm_hg_atm": 747},
      "wind": {"speed": {"m_s": 5}, "direction": {"degree": 0, "scale_8": 0}},
      "cloudiness": {"type": 3, "percent": 100},
      "precipitation": {"type": 2, "amount": 1.2, "intensity": 2}
    }
  ]
}`

const fixtureDaily = `{
  "meta": {"message": "", "code": "200"},
  "response": [
    {
      "date": {"UTC": "2024-01-15 00:00:00", "unix": 1705276800},
      "icon": "d_c1",
      "temperature": {"air": {"max": {"C": -1}, "min": {"C": -7}}, "comfort": {"C": -5}},
      "humidity": {"percent": 84},
      "pressure": {"mm_hg_atm": 748},
      "wind": {"speed": {"m_s": 4}, "direction": {"degree": 225, "scale_8": 6}},
      "cloudiness": {"type": 1, "percent": 40},
      "precipitation": {"type": 0, "amount": 0, "intensity": 0},
      "gm": 4,
      "pollen": {"birch": 3}
    }
  ]
}`

const fixtureAPIError = `{"meta": {"message": "Invalid token", "code": "401"}, "response": null}`
