package catlink

import (
	"context"
	"errors"
)

// ErrEmptyPetID is returned when a pet operation is called without an ID.
var ErrEmptyPetID = errors.New("catlink: pet ID cannot be empty")

// Cats returns the account's pet list. timezoneID is optional.
func (c *Client) Cats(ctx context.Context, timezoneID string) ([]Cat, error) {
	params := map[string]string{}
	if timezoneID != "" {
		params["timezoneId"] = timezoneID
	}
	var data struct {
		Cats []Cat `json:"cats"`
	}
	if err := c.get(ctx, "token/pet/health/v3/cats", params, &data); err != nil {
		return nil, err
	}
	return data.Cats, nil
}

// CatSummary returns a pet's health summary for a date (YYYY-MM-DD). The
// payload shape varies per account generation, so it is returned as a
// key/value map.
func (c *Client) CatSummary(ctx context.Context, petID, date, timezoneID string) (map[string]any, error) {
	if petID == "" {
		return nil, ErrEmptyPetID
	}
	params := map[string]string{
		"petId": petID,
		"date":  date,
		"sport": "1",
	}
	if timezoneID != "" {
		params["timezoneId"] = timezoneID
	}
	var data map[string]any
	if err := c.get(ctx, "token/pet/health/v3/summarySimple", params, &data); err != nil {
		return nil, err
	}
	return data, nil
}
