package controllers

import (
	"context"

	"coindash/src/models"
	"coindash/src/schemas"
)

func (c *Controller) GetSettings(ctx context.Context, userID string) (*schemas.SettingsResponse, error) {
	settings, err := c.SettingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &schemas.SettingsResponse{Settings: make(map[string]string, len(settings))}
	for _, s := range settings {
		resp.Settings[s.Key] = s.Value
	}
	return resp, nil
}

func (c *Controller) UpdateSettings(ctx context.Context, userID string, req *schemas.UpdateSettingsRequest) (*schemas.SettingsResponse, error) {
	for key, value := range req.Settings {
		setting := &models.Setting{UserID: userID, Key: key, Value: value}
		if err := c.SettingRepo.Set(ctx, setting); err != nil {
			return nil, err
		}
	}
	return c.GetSettings(ctx, userID)
}
