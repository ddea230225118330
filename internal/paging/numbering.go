package paging

import "boardapi/internal/model"

// Annotate assigns each row of a fetched page its virtual number: the row's
// position counted down from totalCount in the global newest-first ordering.
// Rows must already be in page order.
func Annotate(rows []model.Post, totalCount, pageNumber, pageSize int) []model.NumberedPost {
	base := totalCount - (pageNumber-1)*pageSize
	out := make([]model.NumberedPost, len(rows))
	for i, p := range rows {
		out[i] = model.NumberedPost{Post: p, VirtualNumber: base - i}
	}
	return out
}
