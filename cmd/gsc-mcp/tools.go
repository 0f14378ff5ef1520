package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seoscope/gsc-mcp/internal/registry"
)

// registerTools registers all MCP tools on the server, wiring each to a
// handler that dispatches through the tool registry.
func registerTools(s *server.MCPServer, reg *registry.Registry) {
	s.AddTool(createListSitesTool(), handleListSites(reg))
	s.AddTool(createGetSiteTool(), handleGetSite(reg))
	s.AddTool(createAddSiteTool(), handleAddSite(reg))
	s.AddTool(createDeleteSiteTool(), handleDeleteSite(reg))
	s.AddTool(createListSitemapsTool(), handleListSitemaps(reg))
	s.AddTool(createGetSitemapTool(), handleGetSitemap(reg))
	s.AddTool(createSubmitSitemapTool(), handleSubmitSitemap(reg))
	s.AddTool(createDeleteSitemapTool(), handleDeleteSitemap(reg))
	s.AddTool(createQuerySearchAnalyticsTool(), handleQuerySearchAnalytics(reg))
	s.AddTool(createInspectURLTool(), handleInspectURL(reg))
}

// --- Tool definitions ---

func createListSitesTool() mcp.Tool {
	return mcp.NewTool("list_sites",
		mcp.WithDescription("List all sites (properties) accessible to the authenticated Search Console user."),
	)
}

func createGetSiteTool() mcp.Tool {
	return mcp.NewTool("get_site",
		mcp.WithDescription("Get information about a specific site, including its verification status and permission level."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL as registered in Search Console (e.g., 'https://www.example.com/' or 'sc-domain:example.com')")),
	)
}

func createAddSiteTool() mcp.Tool {
	return mcp.NewTool("add_site",
		mcp.WithDescription("Add a site to the user's Search Console properties. Verification may still be required afterwards."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL to add (e.g., 'https://www.example.com/'). For domain properties use 'sc-domain:example.com'.")),
	)
}

func createDeleteSiteTool() mcp.Tool {
	return mcp.NewTool("delete_site",
		mcp.WithDescription("Remove a site from the user's Search Console properties. Does not affect the site itself."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL to remove")),
	)
}

func createListSitemapsTool() mcp.Tool {
	return mcp.NewTool("list_sitemaps",
		mcp.WithDescription("List the sitemaps submitted for a site, with processing status and error counts."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL")),
		mcp.WithString("sitemap_index", mcp.Description("Optional sitemap index URL; restricts the listing to sitemaps under that index")),
	)
}

func createGetSitemapTool() mcp.Tool {
	return mcp.NewTool("get_sitemap",
		mcp.WithDescription("Get details for a specific submitted sitemap: type, last download, warnings, errors, and per-content counts."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL, including protocol (e.g., 'http://www.example.com/')")),
		mcp.WithString("feed_path", mcp.Required(), mcp.Description("The full sitemap URL (e.g., 'http://www.example.com/sitemap.xml')")),
	)
}

func createSubmitSitemapTool() mcp.Tool {
	return mcp.NewTool("submit_sitemap",
		mcp.WithDescription("Submit a sitemap for a site. Re-submitting an existing sitemap requests a fresh crawl."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL")),
		mcp.WithString("feed_path", mcp.Required(), mcp.Description("The full sitemap URL to submit (e.g., 'https://www.example.com/sitemap.xml')")),
	)
}

func createDeleteSitemapTool() mcp.Tool {
	return mcp.NewTool("delete_sitemap",
		mcp.WithDescription("Delete a sitemap from a site's Search Console. Does not remove the file from the web."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL")),
		mcp.WithString("feed_path", mcp.Required(), mcp.Description("The full sitemap URL to delete")),
	)
}

func createQuerySearchAnalyticsTool() mcp.Tool {
	return mcp.NewTool("query_search_analytics",
		mcp.WithDescription("Query aggregated search analytics (clicks, impressions, CTR, position) for a site over a date range, grouped by the requested dimensions."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL (e.g., 'sc-domain:example.com' or 'https://www.example.com/')")),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("Start date in YYYY-MM-DD format")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("End date in YYYY-MM-DD format")),
		mcp.WithArray("dimensions", mcp.WithStringItems(), mcp.Description("Dimensions to group by: date, query, page, country, device, searchAppearance")),
		mcp.WithString("search_type", mcp.Description("Search type filter: web, image, video, news, discover, googleNews")),
		mcp.WithNumber("row_limit", mcp.Description("Number of rows to return (default: 1000, max: 25000)")),
		mcp.WithNumber("start_row", mcp.Description("Zero-based index of the first row to return (default: 0)")),
		mcp.WithString("dimension_filter_groups_json", mcp.Description("Optional dimension filters as a JSON array of filter groups, passed to the API unmodified")),
		mcp.WithString("aggregation_type", mcp.Description("How data is aggregated: auto, byPage, byProperty")),
		mcp.WithString("data_state", mcp.Description("Data state filter: all (includes fresh data) or final")),
	)
}

func createInspectURLTool() mcp.Tool {
	return mcp.NewTool("index_inspect_url",
		mcp.WithDescription("Inspect Google's crawl and index status for a specific URL under a verified site."),
		mcp.WithString("site_url", mcp.Required(), mcp.Description("The site URL as defined in Search Console (e.g., 'sc-domain:example.com')")),
		mcp.WithString("inspection_url", mcp.Required(), mcp.Description("The URL to inspect (must belong to the site)")),
		mcp.WithString("language_code", mcp.Description("BCP-47 language code for translated result messages (e.g., 'en-US')")),
	)
}
