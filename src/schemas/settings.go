package schemas

import "fmt"

// Settings known to the dashboard. Unknown keys are rejected so typos do
// not silently create dead preferences.
var KnownSettingKeys = map[string]bool{
	"baseCurrency":  true,
	"notifications": true,
	"theme":         true,
}

type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings"`
}

func (r *UpdateSettingsRequest) Validate() error {
	if len(r.Settings) == 0 {
		return fmt.Errorf("settings must not be empty")
	}
	for key := range r.Settings {
		if !KnownSettingKeys[key] {
			return fmt.Errorf("unknown setting key: %s", key)
		}
	}
	return nil
}
