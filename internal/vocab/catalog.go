package vocab

import "strings"

// PageSize is the number of entries shown per catalog page.
const PageSize = 50

// Filter returns the entries whose english or indonesian text contains term,
// case-insensitively. An empty or whitespace-only term returns all entries.
func Filter(entries []Entry, term string) []Entry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.English), term) ||
			strings.Contains(strings.ToLower(e.Indonesia), term) {
			out = append(out, e)
		}
	}
	return out
}

// Page is one page of a filtered catalog view.
type Page struct {
	Entries []Entry
	Number  int // 1-based, clamped into [1, Total]
	Total   int // total page count, 0 when there are no entries
	Start   int // 1-based index of the first entry on this page
}

// Paginate slices entries into the requested page. A page number beyond the
// last page is clamped down (the filter may have shrunk the result set),
// and anything below 1 is clamped up.
func Paginate(entries []Entry, page int) Page {
	total := (len(entries) + PageSize - 1) / PageSize
	if total == 0 {
		return Page{Number: 1}
	}
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(entries) {
		end = len(entries)
	}

	return Page{
		Entries: entries[start:end],
		Number:  page,
		Total:   total,
		Start:   start + 1,
	}
}
