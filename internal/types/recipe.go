// Package types provides type definitions for structured data used throughout the cook-scraper tools.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Recipe is a scraped recipe as handed over by the external scraper.
// The title doubles as the stem of the output filename.
type Recipe struct {
	Title        string    `json:"title"`
	Link         string    `json:"link,omitempty"`
	TotalTime    TotalTime `json:"total_time"`
	Image        string    `json:"image,omitempty"`
	Instructions string    `json:"instructions"`
}

// TotalTime is the total preparation time in minutes.
// It decodes from either a JSON string or a JSON number and is written out as text.
type TotalTime string

// UnmarshalJSON accepts "30", 30, 12.5 and null.
func (t *TotalTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid total_time string: %w", err)
		}
		*t = TotalTime(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("total_time must be a string or number: %w", err)
	}
	*t = TotalTime(n.String())
	return nil
}

// String returns the time value as written in the recipe.
func (t TotalTime) String() string {
	return string(t)
}
