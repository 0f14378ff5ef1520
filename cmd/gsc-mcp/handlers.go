package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seoscope/gsc-mcp/internal/gsc"
	"github.com/seoscope/gsc-mcp/internal/registry"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// requireSiteURL extracts the mandatory site_url argument.
func requireSiteURL(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	siteURL, err := request.RequireString("site_url")
	if err != nil || siteURL == "" {
		return "", errorResult("Error: site_url parameter is required")
	}
	return siteURL, nil
}

// requireFeedPath extracts the mandatory feed_path argument.
func requireFeedPath(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	feedPath, err := request.RequireString("feed_path")
	if err != nil || feedPath == "" {
		return "", errorResult("Error: feed_path parameter is required")
	}
	return feedPath, nil
}

// --- Handlers ---

func handleListSites(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := reg.Invoke(ctx, gsc.ToolListSites, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing sites: %v", err)), nil
		}

		var resp gsc.SitesListResponse
		if err := json.Unmarshal(result.Payload, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatSiteList(resp.SiteEntry)), nil
	}
}

func handleGetSite(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}

		result, err := reg.Invoke(ctx, gsc.ToolGetSite, map[string]any{"siteUrl": siteURL})
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting site '%s': %v", siteURL, err)), nil
		}

		var site gsc.Site
		if err := json.Unmarshal(result.Payload, &site); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatSite(&site)), nil
	}
}

func handleAddSite(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}

		result, err := reg.Invoke(ctx, gsc.ToolAddSite, map[string]any{"siteUrl": siteURL})
		if err != nil {
			return errorResult(fmt.Sprintf("Error adding site '%s': %v", siteURL, err)), nil
		}

		if !result.Empty() {
			var site gsc.Site
			if json.Unmarshal(result.Payload, &site) == nil && site.SiteURL != "" {
				return textResult(formatSite(&site)), nil
			}
		}
		return textResult(fmt.Sprintf("Site '%s' added successfully. Proceed with verification if needed.", siteURL)), nil
	}
}

func handleDeleteSite(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}

		if _, err := reg.Invoke(ctx, gsc.ToolDeleteSite, map[string]any{"siteUrl": siteURL}); err != nil {
			return errorResult(fmt.Sprintf("Error deleting site '%s': %v", siteURL, err)), nil
		}

		return textResult(fmt.Sprintf("Site '%s' deleted successfully.", siteURL)), nil
	}
}

func handleListSitemaps(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}

		args := map[string]any{"siteUrl": siteURL}
		if idx := request.GetString("sitemap_index", ""); idx != "" {
			args["sitemapIndex"] = idx
		}

		result, err := reg.Invoke(ctx, gsc.ToolListSitemaps, args)
		if err != nil {
			return errorResult(fmt.Sprintf("Error listing sitemaps for '%s': %v", siteURL, err)), nil
		}

		var resp gsc.SitemapsListResponse
		if err := json.Unmarshal(result.Payload, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatSitemapList(siteURL, resp.Sitemap)), nil
	}
}

func handleGetSitemap(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}
		feedPath, errRes := requireFeedPath(request)
		if errRes != nil {
			return errRes, nil
		}

		result, err := reg.Invoke(ctx, gsc.ToolGetSitemap, map[string]any{
			"siteUrl":  siteURL,
			"feedpath": feedPath,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("Error getting sitemap '%s': %v", feedPath, err)), nil
		}

		var sitemap gsc.Sitemap
		if err := json.Unmarshal(result.Payload, &sitemap); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatSitemap(&sitemap)), nil
	}
}

func handleSubmitSitemap(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}
		feedPath, errRes := requireFeedPath(request)
		if errRes != nil {
			return errRes, nil
		}

		if _, err := reg.Invoke(ctx, gsc.ToolSubmitSitemap, map[string]any{
			"siteUrl":  siteURL,
			"feedpath": feedPath,
		}); err != nil {
			return errorResult(fmt.Sprintf("Error submitting sitemap '%s' for '%s': %v", feedPath, siteURL, err)), nil
		}

		return textResult(fmt.Sprintf("Sitemap '%s' submitted successfully for site '%s'.", feedPath, siteURL)), nil
	}
}

func handleDeleteSitemap(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}
		feedPath, errRes := requireFeedPath(request)
		if errRes != nil {
			return errRes, nil
		}

		if _, err := reg.Invoke(ctx, gsc.ToolDeleteSitemap, map[string]any{
			"siteUrl":  siteURL,
			"feedpath": feedPath,
		}); err != nil {
			return errorResult(fmt.Sprintf("Error deleting sitemap '%s' for '%s': %v", feedPath, siteURL, err)), nil
		}

		return textResult(fmt.Sprintf("Sitemap '%s' deleted successfully for site '%s'.", feedPath, siteURL)), nil
	}
}

func handleQuerySearchAnalytics(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}
		startDate, err := request.RequireString("start_date")
		if err != nil || startDate == "" {
			return errorResult("Error: start_date parameter is required (format: YYYY-MM-DD)"), nil
		}
		endDate, err := request.RequireString("end_date")
		if err != nil || endDate == "" {
			return errorResult("Error: end_date parameter is required (format: YYYY-MM-DD)"), nil
		}

		args := map[string]any{
			"siteUrl":   siteURL,
			"startDate": startDate,
			"endDate":   endDate,
			"rowLimit":  request.GetInt("row_limit", 1000),
			"startRow":  request.GetInt("start_row", 0),
		}

		dimensions := request.GetStringSlice("dimensions", nil)
		if len(dimensions) > 0 {
			args["dimensions"] = dimensions
		}
		if st := request.GetString("search_type", ""); st != "" {
			args["searchType"] = st
		}
		if at := request.GetString("aggregation_type", ""); at != "" {
			args["aggregationType"] = at
		}
		if ds := request.GetString("data_state", ""); ds != "" {
			args["dataState"] = ds
		}
		if filtersJSON := request.GetString("dimension_filter_groups_json", ""); filtersJSON != "" {
			var groups []any
			if err := json.Unmarshal([]byte(filtersJSON), &groups); err != nil {
				return errorResult(fmt.Sprintf("Error parsing dimension_filter_groups_json: %v", err)), nil
			}
			args["dimensionFilterGroups"] = groups
		}

		result, err := reg.Invoke(ctx, gsc.ToolQuerySearchAnalytics, args)
		if err != nil {
			return errorResult(fmt.Sprintf("Error querying search analytics for '%s': %v", siteURL, err)), nil
		}

		var resp gsc.AnalyticsResponse
		if err := json.Unmarshal(result.Payload, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatAnalytics(siteURL, startDate, endDate, dimensions, &resp)), nil
	}
}

func handleInspectURL(reg *registry.Registry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		siteURL, errRes := requireSiteURL(request)
		if errRes != nil {
			return errRes, nil
		}
		inspectionURL, err := request.RequireString("inspection_url")
		if err != nil || inspectionURL == "" {
			return errorResult("Error: inspection_url parameter is required"), nil
		}

		args := map[string]any{
			"siteUrl":       siteURL,
			"inspectionUrl": inspectionURL,
		}
		if lc := request.GetString("language_code", ""); lc != "" {
			args["languageCode"] = lc
		}

		result, err := reg.Invoke(ctx, gsc.ToolInspectURL, args)
		if err != nil {
			return errorResult(fmt.Sprintf("Error inspecting URL '%s': %v", inspectionURL, err)), nil
		}

		var resp gsc.InspectionResponse
		if err := json.Unmarshal(result.Payload, &resp); err != nil {
			return errorResult(fmt.Sprintf("Error parsing response: %v", err)), nil
		}

		return textResult(formatInspection(inspectionURL, &resp.InspectionResult)), nil
	}
}
