package pokemon

import "pokepc-dataset/feature/catalog/models"

// Gender is "m" or "f". The empty Gender means genderless or undetermined.
type Gender string

const (
	Male   Gender = "m"
	Female Gender = "f"
)

// PossibleGenders returns the genders p can have.
func PossibleGenders(p models.Pokemon) []Gender {
	switch {
	case p.HasGenderDifferences && p.IsFemaleForm:
		return []Gender{Female}
	case p.HasGenderDifferences:
		return []Gender{Male}
	case p.MaleRate >= 100:
		return []Gender{Male}
	case p.FemaleRate >= 100:
		return []Gender{Female}
	case p.MaleRate <= 0 && p.FemaleRate <= 0:
		return []Gender{}
	}
	return []Gender{Male, Female}
}

// ResolveGender picks the gender of p given a requested one. A single possible
// gender always wins. Otherwise a valid input is kept; with allowEmpty an
// invalid input yields "", else the more common gender is chosen.
func ResolveGender(input string, p models.Pokemon, allowEmpty bool) Gender {
	possible := PossibleGenders(p)
	switch len(possible) {
	case 0:
		return ""
	case 1:
		return possible[0]
	}

	if g := Gender(input); g == Male || g == Female {
		return g
	}
	if allowEmpty {
		return ""
	}
	if p.MaleRate >= p.FemaleRate {
		return Male
	}
	return Female
}
