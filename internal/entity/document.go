package entity

// Word is one positioned text token on a voucher page. Coordinates are PDF
// points with the origin at the bottom-left of the page.
type Word struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Document is one source voucher after text acquisition. Immutable once
// built: it is consumed exactly once by the assembler and then discarded.
type Document struct {
	// Name is the source file name, carried into each record for provenance.
	Name string `json:"name"`

	// Text is the plain extractable text, pages joined with newlines.
	Text string `json:"text"`

	// Words holds per-word layout tokens in reading order. Populated only by
	// the layout extractor; nil for plain text acquisition.
	Words []Word `json:"words,omitempty"`

	// PageWidth is the page width in points, used for midpoint-based
	// receipt/charge classification. Zero when layout was not extracted.
	PageWidth float64 `json:"page_width,omitempty"`
}
