package catalog

// TotalPages 는 ceil(n/pageSize) 이며 빈 목록도 1 페이지로 본다.
// pageSize 가 0 이하이면 전체를 한 페이지로 취급한다.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	pages := n / pageSize
	if n%pageSize != 0 {
		pages++
	}
	return pages
}

// Paginate 는 1-based page 번호에 해당하는 items[(page-1)*pageSize : page*pageSize] 를 돌려준다.
// 범위를 벗어난 page 는 clamp 하지 않고 빈 slice 를 돌려준다. clamp 는 호출 측(ClampPage) 책임이다.
// 곱셈 전에 범위를 확인하므로 page, pageSize 가 아무리 커도 overflow 하지 않는다.
func Paginate[T any](items []T, pageSize, page int) []T {
	if pageSize <= 0 || page < 1 || len(items) == 0 {
		return []T{}
	}
	if page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	start := (page - 1) * pageSize
	end := len(items)
	if pageSize < end-start {
		end = start + pageSize
	}
	return items[start:end]
}

// ClampPage 는 page 를 [1, totalPages] 로 맞춘다.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageInfo 는 "Previous / Page x of y / Next" 네비게이션을 그리는 데 필요한 값이다.
type PageInfo struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// NewPageInfo 는 page 를 clamp 한 뒤 이전/다음 페이지 정보를 계산한다.
func NewPageInfo(page, pageSize, total int) PageInfo {
	totalPages := TotalPages(total, pageSize)
	page = ClampPage(page, totalPages)
	info := PageInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if info.HasPrev {
		info.PrevPage = page - 1
	}
	if info.HasNext {
		info.NextPage = page + 1
	}
	return info
}
