package checks

import (
	"fmt"

	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/utils"
	"pokepc-dataset/feature/catalog"
	"pokepc-dataset/feature/catalog/models"
)

// CheckUniqueness reports duplicate and malformed primary keys across the
// given listings, and duplicate game name slugs.
func CheckUniqueness(listings []dataset.Listing) (Report, error) {
	report := newReport()

	for _, l := range listings {
		records, err := l.Records()
		if err != nil {
			return report, err
		}

		seen := make(map[string]int, len(records))
		slugs := make(map[string]string)
		for _, rec := range records {
			keyed, ok := rec.(dataset.Keyed)
			if !ok {
				return report, fmt.Errorf("collection %s holds unkeyed record %T", l.Name(), rec)
			}
			report.Checked++

			id := keyed.Key()
			seen[id]++
			if seen[id] == 2 {
				report.add(l.Name(), id, "id", id, "duplicate id")
			}
			if l.Name() != catalog.Generations && !utils.IsSlug(id) {
				report.add(l.Name(), id, "id", id, "id is not a slug")
			}

			if g, ok := rec.(models.Game); ok {
				if other, dup := slugs[g.NameSlug]; dup {
					report.add(l.Name(), id, "nameSlug", g.NameSlug, "nameSlug already used by "+other)
				} else {
					slugs[g.NameSlug] = id
				}
			}
		}
	}
	return report, nil
}
