package enums

// Weather conditions reported by the entities.
const (
	ConditionClearNight     = "clear-night"
	ConditionCloudy         = "cloudy"
	ConditionFog            = "fog"
	ConditionLightning      = "lightning"
	ConditionLightningRainy = "lightning-rainy"
	ConditionPartlyCloudy   = "partlycloudy"
	ConditionPouring        = "pouring"
	ConditionRainy          = "rainy"
	ConditionSnowy          = "snowy"
	ConditionSnowyRainy     = "snowy-rainy"
	ConditionSunny          = "sunny"
)
