package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"flora-chain/models"
)

// NarrativeGenerator renders the three audience-targeted recommendation
// blocks from the final aggregates. Pure template substitution, no decision
// logic.
type NarrativeGenerator struct {
	logger *zap.Logger
}

func NewNarrativeGenerator(logger *zap.Logger) *NarrativeGenerator {
	return &NarrativeGenerator{logger: logger}
}

// Generate renders the recommendation blocks. The HTML list structure is part
// of the output contract and is consumed verbatim downstream.
func (g *NarrativeGenerator) Generate(agg *Aggregates) []models.Recommendation {
	topDistricts := formatPairs(agg.Districts.MostCommon(5), false)
	topParts := formatPairs(agg.Parts.MostCommon(4), true)
	ntfpShare := agg.SpeciesTypes.Get(string(models.SpeciesTypeNTFP))
	agroShare := agg.SpeciesTypes.Get(string(models.SpeciesTypeAgro))
	marketFacing := agg.Linkages.Get(string(models.LinkageForward)) + agg.Linkages.Get(string(models.LinkageIntegrated))
	habitatKinds := agg.Habitats.Len()

	return []models.Recommendation{
		{
			Title: "For Community Enterprises",
			Content: `<ul class="list-disc list-inside space-y-2 text-slate-600">` +
				fmt.Sprintf(`<li><strong>Build layered commodity clusters:</strong> Anchor operations in lead districts such as %s so harvest windows, aggregation points, and compliance support are synchronised across villages.</li>`, topDistricts) +
				fmt.Sprintf(`<li><strong>Upgrade primary handling around priority parts:</strong> Channel working capital into micro-drying, sorting, and moisture control units focused on %s, cutting losses and protecting quality premiums.</li>`, topParts) +
				`<li><strong>Design community working-capital cushions:</strong> Blend SHG savings, CSR infusions, and credit guarantees to underwrite harvest advances, enabling members to negotiate confidently with large buyers.</li>` +
				`<li><strong>Institutionalise real-time market intelligence:</strong> Nominate marketing stewards to track prices, buyer specs, and compliance shifts so field plans can be adjusted before the season peaks.</li>` +
				`</ul>`,
		},
		{
			Title: "For Entrepreneurs",
			Content: `<ul class="list-disc list-inside space-y-2 text-slate-600">` +
				fmt.Sprintf(`<li><strong>Craft differentiated product portfolios:</strong> Translate the mix of %d NTFPs and %d agro-commodities into distinct wellness, gourmet, and regenerative product lines with clear market narratives.</li>`, ntfpShare, agroShare) +
				fmt.Sprintf(`<li><strong>Invest in value-chain depth:</strong> %d commodities need forward or integrated support—pair extraction units, cold-press facilities, and packaging lines with long-term raw-material contracts.</li>`, marketFacing) +
				`<li><strong>Embed traceability and sustainability:</strong> Capture batch-wise data on origin, plant parts, and conservation status to meet clean label, ESG, and export audit expectations.</li>` +
				`<li><strong>Adopt omnichannel market access:</strong> Combine tourism retail, institutional buyers, and digital marketplaces so volumes can be shifted quickly when seasonal gluts occur.</li>` +
				`</ul>`,
		},
		{
			Title: "For Planners & Support Agencies",
			Content: `<ul class="list-disc list-inside space-y-2 text-slate-600">` +
				fmt.Sprintf(`<li><strong>Tailor policy support by habitat:</strong> With %d habitat categories represented, extend differentiated extension packages, varietal demonstrations, and climate advisories.</li>`, habitatKinds) +
				`<li><strong>Strengthen logistics and shared infrastructure:</strong> Budget for aggregation hubs, ambient storage, and digital quality labs so hill-based producers can service urban demand without distress sales.</li>` +
				`<li><strong>Formalise inclusive financing:</strong> Expand interest subvention, risk-sharing facilities, and blended finance pipelines that reward outcome-based milestones like traceability or reduced wild harvest.</li>` +
				`<li><strong>Institutionalise market development platforms:</strong> Convene annual buyer-seller forums, export readiness clinics, and branding accelerators that equip local enterprises to participate in premium value chains.</li>` +
				`</ul>`,
		},
	}
}

// formatPairs renders "Key (count)" entries, lowercasing keys for the plant
// part listing.
func formatPairs(pairs []Pair, lower bool) string {
	rendered := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := p.Key
		if lower {
			key = strings.ToLower(key)
		}
		rendered = append(rendered, fmt.Sprintf("%s (%d)", key, p.Count))
	}
	return strings.Join(rendered, ", ")
}
