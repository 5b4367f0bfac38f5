package constants

import (
	"strings"
)

// Famille is a BTP product family. The catalogue only ever stores values
// from this list; anything else collapses to FamilleAutre.
type Famille string

const (
	FamilleArmature      Famille = "Armature"
	FamilleCiment        Famille = "Ciment"
	FamilleCloison       Famille = "Cloison"
	FamilleClimatisation Famille = "Climatisation"
	FamillePlomberie     Famille = "Plomberie"
	FamilleElectricite   Famille = "Électricité"
	FamilleMenuiserie    Famille = "Menuiserie"
	FamilleCouverture    Famille = "Couverture"
	FamilleCarrelage     Famille = "Carrelage"
	FamilleIsolation     Famille = "Isolation"
	FamillePeinture      Famille = "Peinture"
	FamilleFinition      Famille = "Finition"
	FamilleOutillage     Famille = "Outillage"
	FamilleConsommable   Famille = "Consommable"
	FamilleAutre         Famille = "Autre"
)

var allFamilles = []Famille{
	FamilleArmature,
	FamilleCiment,
	FamilleCloison,
	FamilleClimatisation,
	FamillePlomberie,
	FamilleElectricite,
	FamilleMenuiserie,
	FamilleCouverture,
	FamilleCarrelage,
	FamilleIsolation,
	FamillePeinture,
	FamilleFinition,
	FamilleOutillage,
	FamilleConsommable,
	FamilleAutre,
}

// FamillesAsStringSlice returns the allow-list for prompts and schemas.
func FamillesAsStringSlice() []string {
	result := make([]string, len(allFamilles))
	for i, f := range allFamilles {
		result[i] = string(f)
	}
	return result
}

// CanonicalizeFamille maps free-text AI output onto the allow-list.
// Unknown input yields FamilleAutre so query facets never fragment.
func CanonicalizeFamille(input string) (Famille, bool) {
	if input == "" {
		return FamilleAutre, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms seen in real extractions
	synonyms := map[string]Famille{
		"electricite": FamilleElectricite,
		"electricité": FamilleElectricite,
		"élec":        FamilleElectricite,
		"clim":        FamilleClimatisation,
		"placo":       FamilleCloison,
		"plaque":      FamilleCloison,
		"beton":       FamilleCiment,
		"béton":       FamilleCiment,
		"mortier":     FamilleCiment,
		"sanitaire":   FamillePlomberie,
		"toiture":     FamilleCouverture,
		"other":       FamilleAutre,
		"otros":       FamilleAutre,
		"altres":      FamilleAutre,
	}

	if f, ok := synonyms[normalized]; ok {
		return f, true
	}

	for _, f := range allFamilles {
		if normalized == strings.ToLower(string(f)) {
			return f, true
		}
	}

	return FamilleAutre, false
}
