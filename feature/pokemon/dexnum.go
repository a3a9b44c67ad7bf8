package pokemon

import "pokepc-dataset/feature/catalog/models"

// DefaultDexNumPositions is the width dex numbers are padded to when none is given.
const DefaultDexNumPositions = 4

// genBounds holds the last national dex number of each generation.
var genBounds = []int{151, 251, 386, 493, 649, 721, 809, 905}

// DexNumToGen returns the generation a national dex number debuted in.
func DexNumToGen(num int) int {
	for i, bound := range genBounds {
		if num <= bound {
			return i + 1
		}
	}
	return len(genBounds) + 1
}

// FormatDexNum left-pads d with zeros to positions characters.
// A non-positive positions uses DefaultDexNumPositions.
func FormatDexNum(d models.DexNum, positions int) string {
	if positions <= 0 {
		positions = DefaultDexNumPositions
	}
	return d.Format(positions)
}
