package llm

import "strings"

// BuildSystemPrompt assembles the extraction instructions. Invoices come from
// French and Spanish BTP suppliers, so the rules spell out the discount
// arithmetic and the famille allow-list instead of trusting the model's
// defaults.
func BuildSystemPrompt(familles []string) string {
	parts := []string{
		"You are an invoice parser for construction-industry (BTP) supplier invoices, mostly French or Spanish.",
		"Return ONLY JSON that matches the provided JSON Schema. No prose, no markdown fences.",
		"Extract every product line. Ignore delivery fees, eco-taxes, deposits and subtotal/total rows.",
		"'designation_raw' is the line label exactly as printed. 'designation_fr' is a short French translation or cleanup (80 chars max).",
		"'famille' must be one of: " + strings.Join(familles, ", ") + ".",
		"Prices are per unit, excluding VAT, in euros. 'prix_brut_ht' is the gross unit price before discount.",
		"'remise_pct' is the line discount percentage (0 if none). 'prix_remise_ht' must equal prix_brut_ht * (1 - remise_pct/100).",
		"'prix_ttc_iva21' must equal prix_remise_ht * 1.21.",
		"Use DD/MM/YYYY for 'date_facture'. Use decimal points for numbers, never thousands separators.",
		"Set 'confidence' to \"low\" when a price is unreadable, guessed, or the arithmetic does not close. Otherwise \"high\".",
		"If a field is unknown, omit it. Never invent products.",
	}
	return strings.Join(parts, " ")
}

// BuildTextPrompt wraps pre-extracted invoice text for the cheaper text-only
// path. Multimodal requests send the file bytes instead.
func BuildTextPrompt(text, filename string) string {
	var b strings.Builder
	b.WriteString("Filename: ")
	b.WriteString(filename)
	b.WriteString("\n\nInvoice text:\n")
	if len(text) > 20000 {
		b.WriteString(text[:20000])
	} else {
		b.WriteString(text)
	}
	return b.String()
}
