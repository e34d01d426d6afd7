package pull

import (
	"fmt"
	"strings"

	"github.com/go-drift/pulltoload/pkg/errors"
)

// LoadMode configures which edges support pulling and whether loading
// more happens automatically.
type LoadMode int

const (
	// ModePullFromStart refreshes by pulling the start edge.
	ModePullFromStart LoadMode = iota
	// ModePullFromStartAutoLoadMore refreshes from the start; the content
	// requests more data on its own when it reaches the end.
	ModePullFromStartAutoLoadMore
	// ModePullFromStartAutoLoadMoreWithFooter is ModePullFromStartAutoLoadMore
	// with a visible footer while more data loads.
	ModePullFromStartAutoLoadMoreWithFooter
	// ModePullFromEnd loads more by pulling the end edge.
	ModePullFromEnd
	// ModeBoth supports both edges.
	ModeBoth
	// ModeDisabled turns pulling off; both edges overscroll.
	ModeDisabled
	// ModeManualOnly refreshes only through Engine.SetLoading.
	ModeManualOnly
)

type modeTraits struct {
	name         string
	pullToLoad   bool
	fromStart    bool
	fromEnd      bool
	showHeader   bool
	showFooter   bool
	overStart    bool
	overEnd      bool
	autoLoadMore bool
	autoFooter   bool
}

var modeTable = [...]modeTraits{
	ModePullFromStart: {
		name: "pull-from-start", pullToLoad: true, fromStart: true,
		showHeader: true, overEnd: true,
	},
	ModePullFromStartAutoLoadMore: {
		name: "pull-from-start-auto-load-more", pullToLoad: true, fromStart: true, fromEnd: true,
		showHeader: true, overEnd: true, autoLoadMore: true,
	},
	ModePullFromStartAutoLoadMoreWithFooter: {
		name: "pull-from-start-auto-load-more-with-footer", pullToLoad: true, fromStart: true,
		showHeader: true, autoLoadMore: true, autoFooter: true,
	},
	ModePullFromEnd: {
		name: "pull-from-end", pullToLoad: true, fromEnd: true,
		showFooter: true, overStart: true,
	},
	ModeBoth: {
		name: "both", pullToLoad: true, fromStart: true, fromEnd: true,
		showHeader: true, showFooter: true,
	},
	ModeDisabled: {
		name: "disabled", overStart: true, overEnd: true,
	},
	ModeManualOnly: {
		name: "manual-only", showHeader: true, overStart: true, overEnd: true,
	},
}

// LoadModes returns every defined mode in declaration order.
func LoadModes() []LoadMode {
	modes := make([]LoadMode, len(modeTable))
	for i := range modeTable {
		modes[i] = LoadMode(i)
	}
	return modes
}

// IsValid reports whether m is a defined mode.
func (m LoadMode) IsValid() bool {
	return m >= 0 && int(m) < len(modeTable)
}

func (m LoadMode) traits() modeTraits {
	if !m.IsValid() {
		return modeTraits{}
	}
	return modeTable[m]
}

func (m LoadMode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("LoadMode(%d)", int(m))
	}
	return modeTable[m].name
}

// ParseLoadMode resolves a mode from its kebab-case name.
func ParseLoadMode(s string) (LoadMode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, t := range modeTable {
		if t.name == name {
			return LoadMode(i), nil
		}
	}
	return ModePullFromStart, fmt.Errorf("%w: %q", errors.ErrInvalidMode, s)
}

// IsPullToLoad reports whether any edge can be pulled by the user.
func (m LoadMode) IsPullToLoad() bool { return m.traits().pullToLoad }

// IsPullFromStart reports whether pulling the start edge refreshes.
func (m LoadMode) IsPullFromStart() bool { return m.traits().fromStart }

// IsPullFromEnd reports whether pulling the end edge loads more.
func (m LoadMode) IsPullFromEnd() bool { return m.traits().fromEnd }

// ShouldShowHeader reports whether the header indicator is used.
func (m LoadMode) ShouldShowHeader() bool { return m.traits().showHeader }

// ShouldShowFooter reports whether the footer indicator is used.
func (m LoadMode) ShouldShowFooter() bool { return m.traits().showFooter }

// CanOverScrollStart reports whether the start edge rubber-bands.
func (m LoadMode) CanOverScrollStart() bool { return m.traits().overStart }

// CanOverScrollEnd reports whether the end edge rubber-bands.
func (m LoadMode) CanOverScrollEnd() bool { return m.traits().overEnd }

// IsAutoLoadMore reports whether the content loads more on its own.
func (m LoadMode) IsAutoLoadMore() bool { return m.traits().autoLoadMore }

// ShouldShowAutoLoadMoreFooter reports whether auto loading shows a footer.
func (m LoadMode) ShouldShowAutoLoadMoreFooter() bool { return m.traits().autoFooter }
