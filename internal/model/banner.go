package model

// BannerType tags a notification banner variant.
type BannerType string

const (
	BannerSuccess BannerType = "success"
	BannerWarning BannerType = "warning"
	BannerInfo    BannerType = "info"
	BannerError   BannerType = "error"
)

// Banner is a notification the engine deems eligible for display. The
// engine only decides eligibility and content; rendering is the
// collaborator's job.
type Banner struct {
	Type    BannerType `json:"type"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

// BannerStyle is the static style bundle associated with a banner variant.
type BannerStyle struct {
	Icon           string `json:"icon"`
	Background     string `json:"background"`
	Border         string `json:"border"`
	IconBackground string `json:"iconBackground"`
}

var bannerStyles = map[BannerType]BannerStyle{
	BannerSuccess: {Icon: "trending-up", Background: "green-50", Border: "green-200", IconBackground: "green-500"},
	BannerWarning: {Icon: "alert-circle", Background: "orange-50", Border: "orange-200", IconBackground: "orange-500"},
	BannerInfo:    {Icon: "info", Background: "blue-50", Border: "blue-200", IconBackground: "blue-500"},
	BannerError:   {Icon: "alert-circle", Background: "red-50", Border: "red-200", IconBackground: "red-500"},
}

// Style returns the style bundle for the banner type. Unknown types get the
// info style.
func (t BannerType) Style() BannerStyle {
	if s, ok := bannerStyles[t]; ok {
		return s
	}
	return bannerStyles[BannerInfo]
}
