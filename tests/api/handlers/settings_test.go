package handlers_test

import (
	"net/http"
	"testing"

	"coindash/src/schemas"
)

func TestSettingsLifecycle(t *testing.T) {
	var updated schemas.SettingsResponse
	res := doRequest(t, http.MethodPut, "/api/settings", map[string]interface{}{
		"settings": map[string]string{
			"baseCurrency": "usd",
			"theme":        "dark",
		},
	}, &updated)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", res.Status)
	}
	if updated.Settings["theme"] != "dark" {
		t.Errorf("expected theme=dark; got %s", updated.Settings["theme"])
	}

	var fetched schemas.SettingsResponse
	res = doRequest(t, http.MethodGet, "/api/settings", nil, &fetched)
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", res.Status)
	}
	if fetched.Settings["baseCurrency"] != "usd" {
		t.Errorf("expected baseCurrency=usd; got %s", fetched.Settings["baseCurrency"])
	}

	// Overwrite one key.
	res = doRequest(t, http.MethodPut, "/api/settings", map[string]interface{}{
		"settings": map[string]string{"theme": "light"},
	}, &updated)
	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", res.Status)
	}
	if updated.Settings["theme"] != "light" {
		t.Errorf("expected theme=light; got %s", updated.Settings["theme"])
	}
	if updated.Settings["baseCurrency"] != "usd" {
		t.Error("expected other settings to survive a partial update")
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	cases := []struct {
		name string
		body map[string]interface{}
	}{
		{"UnknownKey", map[string]interface{}{"settings": map[string]string{"volume": "loud"}}},
		{"Empty", map[string]interface{}{"settings": map[string]string{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := doRequest(t, http.MethodPut, "/api/settings", tc.body, nil)
			if res.StatusCode != http.StatusUnprocessableEntity {
				t.Errorf("expected status Unprocessable Entity; got %v", res.Status)
			}
		})
	}
}
