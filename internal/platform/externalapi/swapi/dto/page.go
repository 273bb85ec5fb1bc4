// Package dto defines data transfer objects for SWAPI responses.
package dto

// PageResponse is one page of a SWAPI list endpoint such as /people/ or /planets/.
// Next is null on the last page.
type PageResponse struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}
