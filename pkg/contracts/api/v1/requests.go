// Package api contains API contract definitions for the bracket dashboard.
// Version v1 represents the current stable API version.
package api

// Requests

// RoundsQuery carries the seed and region filters of the round table.
// Each parameter may repeat; an absent parameter means All. With Strict set
// to "true" a value outside the known options is rejected instead of
// matching no rows.
type RoundsQuery struct {
	Seeds   []string `json:"seed" query:"seed" validate:"max=17,dive,max=16,printascii"`
	Regions []string `json:"region" query:"region" validate:"max=64,dive,max=64"`
	Strict  string   `json:"strict" query:"strict" validate:"omitempty,oneof=true false"`
}

// DashboardPageQuery selects the tab of the HTML dashboard. Tab is checked
// against the known tabs before the struct is validated.
type DashboardPageQuery struct {
	RoundsQuery
	Tab string `json:"tab" query:"tab"`
}

// Responses

// TableResponse is a display table ready for rendering
type TableResponse struct {
	Name    string     `json:"name"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Count   int        `json:"count"`
}

// SelectionResponse echoes the applied filter selection
type SelectionResponse struct {
	Seeds   []string `json:"seeds"`
	Regions []string `json:"regions"`
}

// RoundsResponse is the filtered, formatted round table
type RoundsResponse struct {
	Selection SelectionResponse `json:"selection"`
	Unknown   []string          `json:"unknown,omitempty"`
	Table     TableResponse     `json:"table"`
}

// OptionsResponse lists the filter choices
type OptionsResponse struct {
	Seeds   []string `json:"seeds"`
	Regions []string `json:"regions"`
}
