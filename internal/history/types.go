package history

// VisitRecord is one entry of the exported browsing history. Field order
// and JSON names follow the import format.
type VisitRecord struct {
	URL            string   `json:"url"`
	Title          string   `json:"title"`
	TimeUsec       int64    `json:"time_usec"`
	PageTransition string   `json:"page_transition"`
	FaviconURL     string   `json:"favicon_url"`
	ClientID       string   `json:"client_id"`
	PToken         struct{} `json:"ptoken"`
}

// Stats holds aggregate figures for the visits inside the export window.
// Earliest and Latest are Chromium timestamps; zero means no visits.
type Stats struct {
	VisitCount int64
	Earliest   int64
	Latest     int64
}
