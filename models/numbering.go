package models

// InvoiceNumberSettingsKey is the well-known settings key the
// numbering configuration is persisted under.
const InvoiceNumberSettingsKey = "invoice_number_settings"

// InvoiceNumberConfig drives invoice number generation. Format is a
// template over the tokens "dd" (two-digit year), "mm" (two-digit
// month) and "nn" (the padded sequence number); hyphens in the format
// are rendered as Separator. IncludeYear and IncludeMonth are kept for
// the settings UI; the format string itself decides which tokens
// appear.
type InvoiceNumberConfig struct {
	Format       string `json:"format"`
	Prefix       string `json:"prefix"`
	Suffix       string `json:"suffix"`
	StartNumber  int    `json:"start_number"`
	Padding      int    `json:"padding"`
	IncludeYear  bool   `json:"include_year"`
	IncludeMonth bool   `json:"include_month"`
	Separator    string `json:"separator"`
}

// DefaultInvoiceNumberConfig returns the configuration used when
// nothing has been persisted yet.
func DefaultInvoiceNumberConfig() InvoiceNumberConfig {
	return InvoiceNumberConfig{
		Format:       "dd-mm-nn",
		Prefix:       "INV-",
		Suffix:       "",
		StartNumber:  1,
		Padding:      3,
		IncludeYear:  true,
		IncludeMonth: true,
		Separator:    "-",
	}
}
