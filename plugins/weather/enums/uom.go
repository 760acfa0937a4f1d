package enums

// Native units of measure declared by entities.
const (
	UnitCelsius        = "°C"
	UnitMmHg           = "mmHg"
	UnitMillimeters    = "mm"
	UnitMetersPerSec   = "m/s"
	UnitPercentage     = "%"
	UnitDegree         = "°"
	UnitNone           = ""
	StateClassMeasured = "measurement"
)
