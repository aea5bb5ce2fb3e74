package recommend

// maxWorksPerAuthor caps how many items one author may contribute to the
// ranked list when the filter requests diversification.
const maxWorksPerAuthor = 5

// diversify keeps at most maxWorksPerAuthor items per author, preserving
// the overall rank order. Items without a resolvable author share a single
// empty-name bucket. With the cap disabled the input comes back unchanged.
func diversify(rankedIDs []string, authorByItem map[string]string, limitPerAuthor bool) []string {
	if !limitPerAuthor {
		return rankedIDs
	}

	perAuthor := make(map[string]int)
	kept := make([]string, 0, len(rankedIDs))
	for _, id := range rankedIDs {
		author := authorByItem[id]
		if perAuthor[author] >= maxWorksPerAuthor {
			continue
		}
		perAuthor[author]++
		kept = append(kept, id)
	}
	return kept
}

// paginate slices [(page-1)*size, page*size) out of ids and reports the
// effective page index, total count, and total pages. A page index outside
// [1, totalPages] clamps to 1.
func paginate(ids []string, pageIndex, pageSize int) (pageIDs []string, effectivePage, total, totalPages int) {
	total = len(ids)
	totalPages = (total + pageSize - 1) / pageSize

	if pageIndex < 1 || pageIndex > totalPages {
		pageIndex = 1
	}

	start := (pageIndex - 1) * pageSize
	if start >= total {
		return nil, pageIndex, total, totalPages
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return ids[start:end], pageIndex, total, totalPages
}
