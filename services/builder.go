package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"flora-chain/models"
)

// justifications keys the advisory sentence directly off the linkage class.
var justifications = map[models.Linkage]string{
	models.LinkageBackward:   "Strengthen cultivation, nurseries, and aggregation systems to stabilise supply.",
	models.LinkageForward:    "Invest in processing, packaging, and market development to capture premiums.",
	models.LinkageIntegrated: "Coordinate both production and market-side interventions for balanced growth.",
}

// RecordBuilder composes one normalized SpeciesRecord per cleaned source row.
type RecordBuilder struct {
	classifier *Classifier
	logger     *zap.Logger
}

func NewRecordBuilder(classifier *Classifier, logger *zap.Logger) *RecordBuilder {
	return &RecordBuilder{classifier: classifier, logger: logger}
}

// Build derives every record field from a single row. Absent cells trigger
// documented defaults, never errors.
func (b *RecordBuilder) Build(row models.RawRow) models.SpeciesRecord {
	name := row.Get(models.ColCommonName)
	if name == "" {
		name = row.Get(models.ColScientificName)
	}
	if name == "" {
		name = "Unnamed Commodity"
	}
	botanical := row.Get(models.ColScientificName)
	category := row.GetDefault(models.ColCategory, "NTFP")
	volume := row.GetDefault(models.ColVolume, "Medium")
	commercial := row.GetDefault(models.ColCommercialValue, "Medium")

	districts := ParseDistricts(row.Get(models.ColDistricts))
	products := ParseProducts(row.Get(models.ColProducts))
	partsUsed := b.classifier.ParseParts(row.Get(models.ColPartsUsed))
	speciesType := b.classifier.DetermineSpeciesType(category)
	linkage := b.classifier.DetermineLinkage(volume, commercial)

	return models.SpeciesRecord{
		Name:            name,
		Botanical:       botanical,
		Image:           fmt.Sprintf("images/%s.jpg", imageSlug(name, botanical)),
		SpeciesType:     speciesType,
		Habitat:         row.Get(models.ColHabitat),
		Conservation:    row.Get(models.ColConservation),
		Districts:       districts,
		PartsUsed:       partsUsed,
		Products:        products,
		ProductFocus:    b.classifier.DetermineProductFocus(products),
		Linkage:         linkage,
		Volume:          volume,
		CommercialValue: commercial,
		Strength:        buildStrength(name, speciesType, volume, commercial, districts),
		Justification:   justifications[linkage],
	}
}

// imageSlug slugs the display name, falling back to the botanical name and
// finally a literal so the identifier is never empty.
func imageSlug(name, botanical string) string {
	if slug := Slugify(name); slug != "" {
		return slug
	}
	if slug := Slugify(botanical); slug != "" {
		return slug
	}
	return "species"
}

// buildStrength renders the one-sentence profile, gracefully omitting absent
// descriptors and districts.
func buildStrength(name string, speciesType models.SpeciesType, volume, commercial string, districts []string) string {
	descriptors := []string{}
	if volume != "" {
		descriptors = append(descriptors, strings.ToLower(volume)+" volume potential")
	}
	if commercial != "" {
		descriptors = append(descriptors, strings.ToLower(commercial)+" commercial value")
	}
	sentence := fmt.Sprintf("%s (%s)", name, speciesType)
	if len(descriptors) > 0 {
		sentence += " shows " + strings.Join(descriptors, " and ")
	}
	if len(districts) > 0 {
		sentence += " across " + humanJoin(districts)
	}
	return sentence + "."
}

// humanJoin renders "A, B and C" for prose interpolation.
func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
