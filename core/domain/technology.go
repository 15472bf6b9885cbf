// ABOUTME: Technology domain models for ranked mention scores
// ABOUTME: TechnologyScore is the universal shape every source and the ranking engine exchange

package domain

import "errors"

// TechnologyScore is one entry of a ranked technology list.
// Technology is a canonical (trimmed, lower-cased) name and Mentions is a
// non-negative score. Scores are real numbers because source weighting can
// produce fractional mentions.
type TechnologyScore struct {
	Technology string  `json:"technology"`
	Mentions   float64 `json:"mentions"`
}

// Validate checks the entry honors the boundary contract.
func (t TechnologyScore) Validate() error {
	if t.Technology == "" {
		return errors.New("technology name cannot be empty")
	}
	if t.Mentions < 0 {
		return errors.New("mentions cannot be negative")
	}
	return nil
}
