package service

// QuestionsPerPage is the fixed size of every question page
const QuestionsPerPage = 10

// NormalizePage maps absent or invalid page numbers to the first page
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate returns the 1-indexed page of items. Out of range pages yield an
// empty, non-nil slice.
func Paginate[T any](items []T, page int) []T {
	page = NormalizePage(page)

	// Compare page numbers before multiplying so huge pages cannot overflow
	if len(items) == 0 || page-1 > (len(items)-1)/QuestionsPerPage {
		return []T{}
	}

	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
