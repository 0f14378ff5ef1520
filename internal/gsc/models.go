// Package gsc holds the Search Console domain: the declarative tool catalog,
// the wire models, and the HTTP transport used to reach the API.
package gsc

// Site is a verified property in Search Console.
type Site struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}

// SitesListResponse is the sites.list envelope.
type SitesListResponse struct {
	SiteEntry []Site `json:"siteEntry"`
}

// SitemapContent is a per-type breakdown inside a sitemap resource.
type SitemapContent struct {
	Type      string `json:"type"`
	Submitted string `json:"submitted"`
	Indexed   string `json:"indexed"`
}

// Sitemap is a submitted sitemap resource. Count fields arrive as strings
// (int64 JSON encoding).
type Sitemap struct {
	Path            string           `json:"path"`
	LastSubmitted   string           `json:"lastSubmitted"`
	LastDownloaded  string           `json:"lastDownloaded"`
	IsPending       bool             `json:"isPending"`
	IsSitemapsIndex bool             `json:"isSitemapsIndex"`
	Type            string           `json:"type"`
	Warnings        string           `json:"warnings"`
	Errors          string           `json:"errors"`
	Contents        []SitemapContent `json:"contents"`
}

// SitemapsListResponse is the sitemaps.list envelope.
type SitemapsListResponse struct {
	Sitemap []Sitemap `json:"sitemap"`
}

// AnalyticsRow is one aggregated search analytics row. Keys line up with the
// requested dimensions, in order.
type AnalyticsRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// AnalyticsResponse is the searchanalytics.query envelope.
type AnalyticsResponse struct {
	Rows                    []AnalyticsRow `json:"rows"`
	ResponseAggregationType string         `json:"responseAggregationType"`
}

// IndexStatusResult is the index section of a URL inspection.
type IndexStatusResult struct {
	Verdict         string   `json:"verdict"`
	CoverageState   string   `json:"coverageState"`
	RobotsTxtState  string   `json:"robotsTxtState"`
	IndexingState   string   `json:"indexingState"`
	LastCrawlTime   string   `json:"lastCrawlTime"`
	PageFetchState  string   `json:"pageFetchState"`
	GoogleCanonical string   `json:"googleCanonical"`
	UserCanonical   string   `json:"userCanonical"`
	CrawledAs       string   `json:"crawledAs"`
	Sitemap         []string `json:"sitemap"`
	ReferringUrls   []string `json:"referringUrls"`
}

// InspectionResult is the body of a URL inspection.
type InspectionResult struct {
	InspectionResultLink string            `json:"inspectionResultLink"`
	IndexStatusResult    IndexStatusResult `json:"indexStatusResult"`
}

// InspectionResponse is the urlInspection.index.inspect envelope.
type InspectionResponse struct {
	InspectionResult InspectionResult `json:"inspectionResult"`
}
