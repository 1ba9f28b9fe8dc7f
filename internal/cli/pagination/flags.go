package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Sort orders.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Validation errors.
var (
	ErrNegative             = errors.New("pagination values cannot be negative")
	ErrMixedPaginationModes = errors.New("--page and --offset are mutually exclusive")
	ErrPageWithoutSize      = errors.New("--page requires --page-size")
	ErrPageSizeWithoutPage  = errors.New("--page-size requires --page")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g. 'distance:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortField     = errors.New("invalid sort field")
)

// Params holds the pagination flags. Offset mode (Limit, Offset) and page
// mode (Page, PageSize) are mutually exclusive. A zero Limit means no limit.
type Params struct {
	Limit    int
	Offset   int
	Page     int
	PageSize int
	Sort     string
}

// Register adds the pagination and sort flags to cmd.
func (p *Params) Register(cmd *cobra.Command, sortHelp string) {
	cmd.Flags().IntVar(&p.Limit, "limit", 0, "maximum number of results (0 for all)")
	cmd.Flags().IntVar(&p.Offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&p.Page, "page", 0, "1-based page number, with --page-size")
	cmd.Flags().IntVar(&p.PageSize, "page-size", 0, "results per page, with --page")
	cmd.Flags().StringVar(&p.Sort, "sort", "", sortHelp)
}

// Validate checks bounds and that the two modes are not mixed.
func (p Params) Validate() error {
	if p.Limit < 0 || p.Offset < 0 || p.Page < 0 || p.PageSize < 0 {
		return ErrNegative
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page > 0 && p.PageSize == 0 {
		return ErrPageWithoutSize
	}
	if p.PageSize > 0 && p.Page == 0 {
		return ErrPageSizeWithoutPage
	}
	return nil
}

// IsPageBased reports whether page mode is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// Window returns the offset and limit to apply. A zero limit means all.
//
//nolint:nonamedreturns // Named returns document the pair.
func (p Params) Window() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply returns the window of items selected by p. Out-of-range windows
// yield an empty slice.
func Apply[T any](p Params, items []T) []T {
	offset, limit := p.Window()
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// sortPartsMax is the number of parts in "field:order".
const sortPartsMax = 2

// ParseSort splits "field" or "field:order". The order defaults to asc.
//
//nolint:nonamedreturns // Named returns document the pair.
func ParseSort(expr string) (field, order string, err error) {
	parts := strings.Split(expr, ":")
	if len(parts) > sortPartsMax {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	}

	field = strings.TrimSpace(parts[0])
	if field == "" {
		return "", "", ErrEmptySortField
	}

	order = SortOrderAsc
	if len(parts) == sortPartsMax {
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
