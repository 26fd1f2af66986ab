package settings

// SettingDefaults holds all default values for configurable settings.
// Values are stored as strings in config.db and converted on read; floats
// here keep the typed getters uniform.
var SettingDefaults = map[string]interface{}{
	// Decision thresholds
	"fuel_cost_per_km_cop": 500.0,   // Estimated fuel cost per km driven
	"max_pickup_km":        2.0,     // Longest acceptable pickup leg
	"min_net_cop":          3000.0,  // Minimum fare-minus-fuel margin
	"min_rate_per_min_cop": 400.0,   // Minimum fare / duration throughput
	"min_trip_km":          1.0,     // Shortest acceptable passenger leg

	// Daily goal tracking
	"daily_goal_cop": 120000.0, // Net earnings target per day

	// Overlay alert behavior
	"alert_vibrate":         1.0, // 1.0 = vibrate on verdict, 0.0 = silent
	"alert_sound":           0.0, // 1.0 = play sound on verdict
	"overlay_autohide_secs": 8.0, // Seconds before the verdict card hides
}

// SettingDescriptions documents each setting for the settings API.
var SettingDescriptions = map[string]string{
	"fuel_cost_per_km_cop":  "Estimated fuel cost per kilometer in COP, subtracted from the fare",
	"max_pickup_km":         "Reject offers whose pickup leg exceeds this distance",
	"min_net_cop":           "Reject offers whose net margin (fare minus fuel) is below this",
	"min_rate_per_min_cop":  "Reject offers paying less than this per estimated minute",
	"min_trip_km":           "Reject offers whose trip leg is shorter than this",
	"daily_goal_cop":        "Daily net earnings goal used by the progress summary",
	"alert_vibrate":         "Vibrate the device when a verdict is shown",
	"alert_sound":           "Play a sound when a verdict is shown",
	"overlay_autohide_secs": "Seconds the verdict overlay stays visible",
}

// AlertPrefs holds the overlay alert preferences consumed by the renderer.
type AlertPrefs struct {
	Vibrate      bool `json:"vibrate"`
	Sound        bool `json:"sound"`
	AutoHideSecs int  `json:"autohide_secs"`
}
