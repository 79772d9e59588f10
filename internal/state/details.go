package state

import "github.com/atomicstack/bizray-tui/internal/api"

// Section is a collapsible block of the detail screen.
type Section int

const (
	SectionOverview Section = iota
	SectionAddress
	SectionPartners
	SectionRegistry
	SectionRisk
	sectionCount
)

// Sections lists every section in display order.
var Sections = []Section{SectionOverview, SectionAddress, SectionPartners, SectionRegistry, SectionRisk}

func (s Section) String() string {
	switch s {
	case SectionOverview:
		return "Overview"
	case SectionAddress:
		return "Address"
	case SectionPartners:
		return "Partners"
	case SectionRegistry:
		return "Registry Entries"
	case SectionRisk:
		return "Risk Assessment"
	default:
		return "Unknown"
	}
}

func defaultExpanded() map[Section]bool {
	return map[Section]bool{
		SectionOverview: true,
		SectionAddress:  true,
		SectionPartners: true,
		SectionRegistry: false,
		SectionRisk:     true,
	}
}

// DetailsView is the detail screen state.
type DetailsView struct {
	FN           string
	Company      *api.Company
	ScrollOffset int
	Focus        Section
	Expanded     map[Section]bool
}

// Start prepares the view for fn while its record loads.
func (d *DetailsView) Start(fn string) {
	if d.FN != fn {
		d.Company = nil
	}
	d.FN = fn
	d.ScrollOffset = 0
}

func (d *DetailsView) IsExpanded(s Section) bool {
	if d.Expanded == nil {
		d.Expanded = defaultExpanded()
	}
	return d.Expanded[s]
}

// ToggleFocused flips expansion of the focused section.
func (d *DetailsView) ToggleFocused() bool {
	if d.Expanded == nil {
		d.Expanded = defaultExpanded()
	}
	d.Expanded[d.Focus] = !d.Expanded[d.Focus]
	return d.Expanded[d.Focus]
}

func (d *DetailsView) NextSection() {
	d.Focus = (d.Focus + 1) % sectionCount
}

func (d *DetailsView) PrevSection() {
	d.Focus = (d.Focus + sectionCount - 1) % sectionCount
}

// Scroll moves the view by delta lines within [0, maxOffset].
func (d *DetailsView) Scroll(delta, maxOffset int) bool {
	old := d.ScrollOffset
	d.ScrollOffset += delta
	if d.ScrollOffset > maxOffset {
		d.ScrollOffset = maxOffset
	}
	if d.ScrollOffset < 0 {
		d.ScrollOffset = 0
	}
	return old != d.ScrollOffset
}
