package vocab

// Entry is a single vocabulary item: an English word and its Indonesian
// translation, plus optional metadata carried by the dataset. Entries are
// immutable once loaded; the english field serves as the working identifier.
type Entry struct {
	English   string `json:"english"`
	Indonesia string `json:"indonesia"`
	Type      string `json:"type,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}
