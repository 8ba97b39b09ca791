package tui

import "github.com/portslayer/portslayer/internal/scan"

// View-layer state over the merged port list: which protocol to show
// and where in the paginated view we are. Transitions are pure so the
// state machine is testable without a running terminal.

const defaultPageSize = 10

// pageSizes are the page-size choices the UI cycles through.
var pageSizes = []int{5, 10}

type actionKind int

const (
	actionRefresh actionKind = iota
	actionSetFilter
	actionSetPageSize
	actionPrevPage
	actionNextPage
)

type action struct {
	kind   actionKind
	filter scan.ProtocolFilter
	size   int
}

type viewState struct {
	filter   scan.ProtocolFilter
	page     int
	pageSize int
}

func initialViewState() viewState {
	return viewState{filter: scan.FilterAll, pageSize: defaultPageSize}
}

// apply is the single transition function for all view actions.
// totalItems is the size of the currently filtered list, used to clamp
// page navigation. Anything that changes the visible set resets to the
// first page, since the old page may no longer exist.
func (s viewState) apply(a action, totalItems int) viewState {
	switch a.kind {
	case actionRefresh:
		s.page = 0
	case actionSetFilter:
		s.filter = a.filter
		s.page = 0
	case actionSetPageSize:
		if a.size > 0 {
			s.pageSize = a.size
		}
		s.page = 0
	case actionPrevPage:
		if s.page > 0 {
			s.page--
		}
	case actionNextPage:
		if s.page+1 < scan.TotalPages(totalItems, s.pageSize) {
			s.page++
		}
	}
	return s
}

// clampPage pulls the page back into range after the list shrinks
// underneath the view (ports closing between scans).
func (s viewState) clampPage(totalItems int) viewState {
	last := scan.TotalPages(totalItems, s.pageSize) - 1
	if s.page > last {
		s.page = last
	}
	return s
}

// nextPageSize cycles through the available page sizes.
func (s viewState) nextPageSize() int {
	for i, size := range pageSizes {
		if size == s.pageSize {
			return pageSizes[(i+1)%len(pageSizes)]
		}
	}
	return defaultPageSize
}
