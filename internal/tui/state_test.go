package tui

import (
	"testing"

	"github.com/portslayer/portslayer/internal/scan"
)

func TestInitialViewState(t *testing.T) {
	s := initialViewState()
	if s.filter != scan.FilterAll {
		t.Errorf("filter = %v, want FilterAll", s.filter)
	}
	if s.page != 0 || s.pageSize != defaultPageSize {
		t.Errorf("state = %+v, want page 0 size %d", s, defaultPageSize)
	}
}

func TestApplySetFilterResetsPage(t *testing.T) {
	s := viewState{filter: scan.FilterAll, page: 2, pageSize: 10}
	s = s.apply(action{kind: actionSetFilter, filter: scan.FilterUDP}, 25)
	if s.filter != scan.FilterUDP {
		t.Errorf("filter = %v, want FilterUDP", s.filter)
	}
	if s.page != 0 {
		t.Errorf("page = %d, want 0 after filter change", s.page)
	}
}

func TestApplySetPageSizeResetsPage(t *testing.T) {
	s := viewState{page: 1, pageSize: 10}
	s = s.apply(action{kind: actionSetPageSize, size: 5}, 25)
	if s.pageSize != 5 || s.page != 0 {
		t.Errorf("state = %+v, want size 5 page 0", s)
	}

	// A non-positive size is ignored but still resets to the first page.
	s = viewState{page: 1, pageSize: 10}
	s = s.apply(action{kind: actionSetPageSize, size: 0}, 25)
	if s.pageSize != 10 || s.page != 0 {
		t.Errorf("state = %+v, want size 10 page 0", s)
	}
}

func TestApplyPageNavigation(t *testing.T) {
	s := viewState{pageSize: 10}

	s = s.apply(action{kind: actionPrevPage}, 25)
	if s.page != 0 {
		t.Errorf("prev on first page = %d, want 0", s.page)
	}

	s = s.apply(action{kind: actionNextPage}, 25)
	s = s.apply(action{kind: actionNextPage}, 25)
	if s.page != 2 {
		t.Errorf("page = %d, want 2", s.page)
	}

	// 25 items at size 10 means page 2 is the last page.
	s = s.apply(action{kind: actionNextPage}, 25)
	if s.page != 2 {
		t.Errorf("next on last page = %d, want 2", s.page)
	}

	s = s.apply(action{kind: actionPrevPage}, 25)
	if s.page != 1 {
		t.Errorf("page = %d, want 1", s.page)
	}
}

func TestApplyNextPageOnEmptyList(t *testing.T) {
	s := viewState{pageSize: 10}
	s = s.apply(action{kind: actionNextPage}, 0)
	if s.page != 0 {
		t.Errorf("page = %d, want 0 on empty list", s.page)
	}
}

func TestApplyRefreshResetsPage(t *testing.T) {
	s := viewState{page: 3, pageSize: 5}
	s = s.apply(action{kind: actionRefresh}, 40)
	if s.page != 0 {
		t.Errorf("page = %d, want 0 after refresh", s.page)
	}
}

func TestClampPage(t *testing.T) {
	s := viewState{page: 4, pageSize: 10}

	if got := s.clampPage(15); got.page != 1 {
		t.Errorf("page = %d, want 1 after list shrank to 15", got.page)
	}
	if got := s.clampPage(0); got.page != 0 {
		t.Errorf("page = %d, want 0 on empty list", got.page)
	}

	in := viewState{page: 1, pageSize: 10}
	if got := in.clampPage(25); got.page != 1 {
		t.Errorf("page = %d, want 1 (already in range)", got.page)
	}
}

func TestNextPageSizeCycles(t *testing.T) {
	s := viewState{pageSize: 10}
	if got := s.nextPageSize(); got != 5 {
		t.Errorf("next size after 10 = %d, want 5", got)
	}

	s.pageSize = 5
	if got := s.nextPageSize(); got != 10 {
		t.Errorf("next size after 5 = %d, want 10", got)
	}

	// Unknown sizes fall back to the default.
	s.pageSize = 7
	if got := s.nextPageSize(); got != defaultPageSize {
		t.Errorf("next size after 7 = %d, want %d", got, defaultPageSize)
	}
}
