package main

import (
	"strings"
	"testing"

	"github.com/seoscope/gsc-mcp/internal/gsc"
)

func TestFormatSiteList_Empty(t *testing.T) {
	text := formatSiteList(nil)
	if !strings.Contains(text, "No sites found") {
		t.Error("Expected empty-list message")
	}
}

func TestFormatSiteList_Order(t *testing.T) {
	sites := []gsc.Site{
		{SiteURL: "https://b.example/", PermissionLevel: "siteOwner"},
		{SiteURL: "https://a.example/", PermissionLevel: "siteRestrictedUser"},
	}
	text := formatSiteList(sites)
	if strings.Index(text, "b.example") > strings.Index(text, "a.example") {
		t.Error("Site order should not be re-sorted")
	}
	if !strings.Contains(text, "siteRestrictedUser") {
		t.Error("Expected permission levels in output")
	}
}

func TestFormatSite_Unverified(t *testing.T) {
	text := formatSite(&gsc.Site{SiteURL: "https://www.example.com/", PermissionLevel: "siteUnverifiedUser"})
	if !strings.Contains(text, "not yet verified") {
		t.Error("Expected unverified note")
	}
}

func TestFormatSitemap_Contents(t *testing.T) {
	sm := &gsc.Sitemap{
		Path:          "https://www.example.com/sitemap.xml",
		Type:          "sitemap",
		LastSubmitted: "2026-08-01T10:00:00.000Z",
		Warnings:      "2",
		Errors:        "0",
		Contents: []gsc.SitemapContent{
			{Type: "web", Submitted: "500", Indexed: "480"},
			{Type: "image", Submitted: "120", Indexed: "100"},
		},
	}
	text := formatSitemap(sm)
	if !strings.Contains(text, "## Contents") {
		t.Error("Expected contents section")
	}
	if !strings.Contains(text, "| web | 500 | 480 |") {
		t.Errorf("Expected web content row, got:\n%s", text)
	}
}

func TestFormatAnalytics_EmptyRows(t *testing.T) {
	text := formatAnalytics("sc-domain:example.com", "2026-07-01", "2026-07-31", nil, &gsc.AnalyticsResponse{})
	if !strings.Contains(text, "No data for the requested period") {
		t.Error("Expected no-data message")
	}
}

func TestFormatAnalytics_CTRAndKeys(t *testing.T) {
	resp := &gsc.AnalyticsResponse{
		Rows: []gsc.AnalyticsRow{
			{Keys: []string{"2026-07-01", "query one"}, Clicks: 10, Impressions: 200, CTR: 0.05, Position: 3.4},
			{Keys: nil, Clicks: 5, Impressions: 100, CTR: 0.05, Position: 8.15},
		},
	}
	text := formatAnalytics("sc-domain:example.com", "2026-07-01", "2026-07-31", []string{"date", "query"}, resp)

	if !strings.Contains(text, "date / query") {
		t.Error("Expected dimension names as the key header")
	}
	if !strings.Contains(text, "2026-07-01 / query one") {
		t.Error("Expected keys joined in row")
	}
	if !strings.Contains(text, "5.00%") {
		t.Error("Expected CTR rendered as a percentage")
	}
	if !strings.Contains(text, "(all)") {
		t.Error("Expected keyless row rendered as (all)")
	}
	if !strings.Contains(text, "*2 rows returned.*") {
		t.Error("Expected row count footer")
	}
}

func TestFormatInspection_ReferringSources(t *testing.T) {
	result := &gsc.InspectionResult{
		InspectionResultLink: "https://search.google.com/search-console/inspect?x=1",
		IndexStatusResult: gsc.IndexStatusResult{
			Verdict:       "NEUTRAL",
			CoverageState: "Discovered - currently not indexed",
			Sitemap:       []string{"https://www.example.com/sitemap.xml"},
			ReferringUrls: []string{"https://www.example.com/"},
		},
	}
	text := formatInspection("https://www.example.com/new-page", result)

	if !strings.Contains(text, "NEUTRAL") {
		t.Error("Expected verdict in output")
	}
	if !strings.Contains(text, "Referring Sitemaps") {
		t.Error("Expected referring sitemaps section")
	}
	if !strings.Contains(text, "search-console/inspect") {
		t.Error("Expected full report link")
	}
	// Absent fields render as a dash, not empty cells.
	if !strings.Contains(text, "| Last Crawl | - |") {
		t.Errorf("Expected dash for missing crawl time, got:\n%s", text)
	}
}
