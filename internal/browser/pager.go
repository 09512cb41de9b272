package browser

// Client-side pagination over an already-fetched result set. The backend
// returns all matching rows unpaginated; slicing and page-number windowing
// happen entirely in memory.

// PerPageOptions are the selectable page sizes.
var PerPageOptions = []int{5, 10, 15}

// Ellipsis is the page-label gap marker.
const Ellipsis = 0

// PageLabel is one rendered pagination control: a 1-indexed page number, or
// Ellipsis for a gap.
type PageLabel int

// PageCount returns ceil(total/perPage). Zero rows means zero pages.
func PageCount(total, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// PageSlice returns the rows visible on the given 1-indexed page: the slice
// [(page-1)*perPage, page*perPage) clipped to the row count.
func PageSlice[T any](rows []T, page, perPage int) []T {
	if page < 1 || perPage < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(rows) {
		return nil
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// WindowPages lays out the pagination controls for total pages with the given
// current page: the first three pages, a window of `window` pages centered on
// current, and the last three pages, with an Ellipsis marker wherever a gap
// remains between runs. Five or fewer total pages are listed densely with no
// ellipses. Every page number appears at most once, in ascending order.
func WindowPages(total, current, window int) []PageLabel {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if window < 1 {
		window = 1
	}

	if total <= 5 {
		labels := make([]PageLabel, 0, total)
		for p := 1; p <= total; p++ {
			labels = append(labels, PageLabel(p))
		}
		return labels
	}

	radius := window / 2
	include := make([]bool, total+1)
	for p := 1; p <= 3; p++ {
		include[p] = true
	}
	for p := current - radius; p <= current+radius; p++ {
		if p >= 1 && p <= total {
			include[p] = true
		}
	}
	for p := total - 2; p <= total; p++ {
		include[p] = true
	}

	labels := make([]PageLabel, 0, total)
	prev := 0
	for p := 1; p <= total; p++ {
		if !include[p] {
			continue
		}
		if prev != 0 && p-prev > 1 {
			labels = append(labels, Ellipsis)
		}
		labels = append(labels, PageLabel(p))
		prev = p
	}
	return labels
}
