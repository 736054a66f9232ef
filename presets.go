package main

// page identifies which site page the background is rendered for. Each page
// carries its own initial overrides; the closed enum keeps the preset table
// exhaustive at compile time instead of a string-keyed lookup.
type page int

const (
	pageHome page = iota
	pageAbout
	pageResearch
	pagePublications
	pageOutreach
	pageMusic
	pageContact
)

// presetOverrides holds the initial engine values a page merges over the
// defaults at startup.
type presetOverrides struct {
	hLines     int
	vLines     int
	amp        float64
	amp2       float64
	boostAlpha float64
}

// overrides returns the preset table entry for the page.
func (p page) overrides() presetOverrides {
	switch p {
	case pageAbout:
		return presetOverrides{hLines: 40, vLines: 20, amp: 16, amp2: 12, boostAlpha: 0.16}
	case pageResearch:
		return presetOverrides{hLines: 52, vLines: 24, amp: 14, amp2: 10, boostAlpha: 0.14}
	case pagePublications:
		return presetOverrides{hLines: 36, vLines: 18, amp: 12, amp2: 8, boostAlpha: 0.12}
	case pageOutreach:
		return presetOverrides{hLines: 44, vLines: 22, amp: 18, amp2: 14, boostAlpha: 0.18}
	case pageMusic:
		return presetOverrides{hLines: 48, vLines: 24, amp: 24, amp2: 18, boostAlpha: 0.20}
	case pageContact:
		return presetOverrides{hLines: 38, vLines: 18, amp: 14, amp2: 10, boostAlpha: 0.14}
	default:
		return presetOverrides{hLines: 46, vLines: 22, amp: 20, amp2: 16, boostAlpha: 0.18}
	}
}

// name returns the identifier used on the command line and in overlays.
func (p page) name() string {
	switch p {
	case pageAbout:
		return "about"
	case pageResearch:
		return "research"
	case pagePublications:
		return "publications"
	case pageOutreach:
		return "outreach"
	case pageMusic:
		return "music"
	case pageContact:
		return "contact"
	default:
		return "home"
	}
}

// parsePage maps a page identifier to its preset, falling back to home for
// unknown values.
func parsePage(s string) page {
	switch s {
	case "about":
		return pageAbout
	case "research":
		return pageResearch
	case "publications":
		return pagePublications
	case "outreach":
		return pageOutreach
	case "music":
		return pageMusic
	case "contact":
		return pageContact
	default:
		return pageHome
	}
}
