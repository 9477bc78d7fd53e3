package catalog

// BookRecord is one entry of the catalog.
//
// AvailableCopies is expected to be <= TotalCopies but this is not enforced;
// records that break the rule are kept as-is.
type BookRecord struct {
	Title           string `json:"title"           yaml:"title"`
	Author          string `json:"author"          yaml:"author"`
	Genre           string `json:"genre"           yaml:"genre"`
	AgeRating       string `json:"ageRating"       yaml:"ageRating"`
	Description     string `json:"description"     yaml:"description"`
	CoverRef        string `json:"cover"           yaml:"cover"`
	TotalCopies     int    `json:"totalCopies"     yaml:"totalCopies"`
	AvailableCopies int    `json:"availableCopies" yaml:"availableCopies"`
}

// IsAvailable reports whether at least one copy can be borrowed.
func (b BookRecord) IsAvailable() bool {
	return b.AvailableCopies > 0
}
