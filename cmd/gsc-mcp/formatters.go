package main

import (
	"fmt"
	"strings"

	"github.com/seoscope/gsc-mcp/internal/gsc"
)

// formatSiteList formats the sites collection as a markdown table,
// preserving upstream order.
func formatSiteList(sites []gsc.Site) string {
	if len(sites) == 0 {
		return "No sites found. Use `add_site` to register a property."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Search Console Sites (%d)\n\n", len(sites)))
	sb.WriteString("| # | Site | Permission |\n")
	sb.WriteString("|---|------|------------|\n")
	for i, s := range sites {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s |\n", i+1, s.SiteURL, s.PermissionLevel))
	}
	return sb.String()
}

// formatSite formats a single site resource.
func formatSite(site *gsc.Site) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Site: %s\n\n", site.SiteURL))
	sb.WriteString(fmt.Sprintf("**Permission Level:** %s\n", site.PermissionLevel))
	if site.PermissionLevel == "siteUnverifiedUser" {
		sb.WriteString("\n*This site is not yet verified for the authenticated user.*\n")
	}
	return sb.String()
}

// formatSitemapList formats the sitemaps collection as a markdown table,
// preserving upstream order.
func formatSitemapList(siteURL string, sitemaps []gsc.Sitemap) string {
	if len(sitemaps) == 0 {
		return fmt.Sprintf("No sitemaps found for site '%s'. Use `submit_sitemap` to add one.", siteURL)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Sitemaps for %s (%d)\n\n", siteURL, len(sitemaps)))
	sb.WriteString("| Path | Type | Last Submitted | Pending | Warnings | Errors |\n")
	sb.WriteString("|------|------|----------------|---------|----------|--------|\n")
	for _, sm := range sitemaps {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s |\n",
			sm.Path, orDash(sm.Type), orDash(sm.LastSubmitted),
			yesNo(sm.IsPending), orDash(sm.Warnings), orDash(sm.Errors)))
	}
	return sb.String()
}

// formatSitemap formats a single sitemap resource with its content breakdown.
func formatSitemap(sm *gsc.Sitemap) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Sitemap: %s\n\n", sm.Path))
	sb.WriteString(fmt.Sprintf("**Type:** %s\n", orDash(sm.Type)))
	sb.WriteString(fmt.Sprintf("**Last Submitted:** %s\n", orDash(sm.LastSubmitted)))
	sb.WriteString(fmt.Sprintf("**Last Downloaded:** %s\n", orDash(sm.LastDownloaded)))
	sb.WriteString(fmt.Sprintf("**Pending:** %s\n", yesNo(sm.IsPending)))
	sb.WriteString(fmt.Sprintf("**Sitemap Index:** %s\n", yesNo(sm.IsSitemapsIndex)))
	sb.WriteString(fmt.Sprintf("**Warnings:** %s\n", orDash(sm.Warnings)))
	sb.WriteString(fmt.Sprintf("**Errors:** %s\n", orDash(sm.Errors)))

	if len(sm.Contents) > 0 {
		sb.WriteString("\n## Contents\n\n")
		sb.WriteString("| Type | Submitted | Indexed |\n")
		sb.WriteString("|------|-----------|--------|\n")
		for _, c := range sm.Contents {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", c.Type, orDash(c.Submitted), orDash(c.Indexed)))
		}
	}
	return sb.String()
}

// formatAnalytics formats search analytics rows as a markdown table,
// preserving upstream row order.
func formatAnalytics(siteURL, startDate, endDate string, dimensions []string, resp *gsc.AnalyticsResponse) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Search Analytics: %s\n\n", siteURL))
	sb.WriteString(fmt.Sprintf("**Period:** %s to %s\n", startDate, endDate))
	if len(dimensions) > 0 {
		sb.WriteString(fmt.Sprintf("**Dimensions:** %s\n", strings.Join(dimensions, ", ")))
	}
	if resp.ResponseAggregationType != "" {
		sb.WriteString(fmt.Sprintf("**Aggregation:** %s\n", resp.ResponseAggregationType))
	}
	sb.WriteString("\n")

	if len(resp.Rows) == 0 {
		sb.WriteString("No data for the requested period.\n")
		return sb.String()
	}

	keyHeader := "Keys"
	if len(dimensions) > 0 {
		keyHeader = strings.Join(dimensions, " / ")
	}
	sb.WriteString(fmt.Sprintf("| %s | Clicks | Impressions | CTR | Position |\n", keyHeader))
	sb.WriteString("|------|--------|-------------|-----|----------|\n")
	for _, row := range resp.Rows {
		keys := strings.Join(row.Keys, " / ")
		if keys == "" {
			keys = "(all)"
		}
		sb.WriteString(fmt.Sprintf("| %s | %.0f | %.0f | %.2f%% | %.1f |\n",
			keys, row.Clicks, row.Impressions, row.CTR*100, row.Position))
	}
	sb.WriteString(fmt.Sprintf("\n*%d rows returned.*\n", len(resp.Rows)))
	return sb.String()
}

// formatInspection formats a URL inspection result.
func formatInspection(inspectionURL string, result *gsc.InspectionResult) string {
	idx := result.IndexStatusResult

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# URL Inspection: %s\n\n", inspectionURL))
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Verdict | %s |\n", orDash(idx.Verdict)))
	sb.WriteString(fmt.Sprintf("| Coverage | %s |\n", orDash(idx.CoverageState)))
	sb.WriteString(fmt.Sprintf("| Indexing | %s |\n", orDash(idx.IndexingState)))
	sb.WriteString(fmt.Sprintf("| Robots.txt | %s |\n", orDash(idx.RobotsTxtState)))
	sb.WriteString(fmt.Sprintf("| Page Fetch | %s |\n", orDash(idx.PageFetchState)))
	sb.WriteString(fmt.Sprintf("| Last Crawl | %s |\n", orDash(idx.LastCrawlTime)))
	sb.WriteString(fmt.Sprintf("| Crawled As | %s |\n", orDash(idx.CrawledAs)))
	sb.WriteString(fmt.Sprintf("| Google Canonical | %s |\n", orDash(idx.GoogleCanonical)))
	sb.WriteString(fmt.Sprintf("| User Canonical | %s |\n", orDash(idx.UserCanonical)))

	if len(idx.Sitemap) > 0 {
		sb.WriteString(fmt.Sprintf("\n**Referring Sitemaps:** %s\n", strings.Join(idx.Sitemap, ", ")))
	}
	if len(idx.ReferringUrls) > 0 {
		sb.WriteString(fmt.Sprintf("**Referring URLs:** %s\n", strings.Join(idx.ReferringUrls, ", ")))
	}
	if result.InspectionResultLink != "" {
		sb.WriteString(fmt.Sprintf("\n*Full report: %s*\n", result.InspectionResultLink))
	}
	return sb.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
