package checks

import (
	"fmt"

	"pokepc-dataset/core/dataset"
)

// StructureReport lists the required documents absent from a source.
type StructureReport struct {
	Checked int      `json:"checked"`
	Missing []string `json:"missing"`
}

// CheckStructure returns the documents of required that src does not hold,
// in the order given.
func CheckStructure(src dataset.Source, required []string) (StructureReport, error) {
	report := StructureReport{Checked: len(required), Missing: []string{}}

	for _, name := range required {
		exists, err := src.Exists(name)
		if err != nil {
			return report, fmt.Errorf("failed to check %s: %w", name, err)
		}
		if !exists {
			report.Missing = append(report.Missing, name)
		}
	}
	return report, nil
}
