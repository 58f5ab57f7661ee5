package domain

// MaxPageSize caps PageRequest.PageSize.
const MaxPageSize = 200

// SortDirection is the order applied to a sort field.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortOrder names a sortable field and its direction.
type SortOrder struct {
	Field     string
	Direction SortDirection
}

// PageRequest selects one page of a result set. PageIndex is zero-based.
type PageRequest struct {
	PageIndex int
	PageSize  int
	Sort      []SortOrder
}

// Validate checks all fields and collects all errors.
func (p PageRequest) Validate() error {
	var errs []FieldError
	if p.PageIndex < 0 {
		errs = append(errs, FieldError{Field: "page_index", Message: "must be >= 0"})
	}
	if p.PageSize <= 0 {
		errs = append(errs, FieldError{Field: "page_size", Message: "must be > 0"})
	}
	if p.PageSize > MaxPageSize {
		errs = append(errs, FieldError{Field: "page_size", Message: "max 200"})
	}
	for _, s := range p.Sort {
		if s.Field == "" {
			errs = append(errs, FieldError{Field: "sort", Message: "field required"})
		}
		if s.Direction != "" && s.Direction != SortAsc && s.Direction != SortDesc {
			errs = append(errs, FieldError{Field: "sort", Message: "direction must be ASC or DESC"})
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Offset returns the number of rows skipped before this page.
func (p PageRequest) Offset() uint64 {
	return uint64(p.PageIndex) * uint64(p.PageSize)
}

// Page is one page of results plus the size of the full result set.
type Page[T any] struct {
	Content       []T
	TotalElements int64
	PageIndex     int
	PageSize      int
}

// TotalPages returns the number of pages for the page size.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// MapPage converts page content while keeping the paging metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := Page[R]{
		Content:       make([]R, len(p.Content)),
		TotalElements: p.TotalElements,
		PageIndex:     p.PageIndex,
		PageSize:      p.PageSize,
	}
	for i, v := range p.Content {
		out.Content[i] = fn(v)
	}
	return out
}
