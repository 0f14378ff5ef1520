package gsc

import (
	"net/http"

	"github.com/seoscope/gsc-mcp/internal/common"
	"github.com/seoscope/gsc-mcp/internal/registry"
)

// Tool names as exposed to the host.
const (
	ToolListSites            = "list_sites"
	ToolGetSite              = "get_site"
	ToolAddSite              = "add_site"
	ToolDeleteSite           = "delete_site"
	ToolListSitemaps         = "list_sitemaps"
	ToolGetSitemap           = "get_sitemap"
	ToolSubmitSitemap        = "submit_sitemap"
	ToolDeleteSitemap        = "delete_sitemap"
	ToolQuerySearchAnalytics = "query_search_analytics"
	ToolInspectURL           = "index_inspect_url"
)

// Catalog returns the descriptor for every Search Console tool. Parameter
// names are the upstream wire names; siteUrl and feedpath are path-escaped
// by the dispatcher.
func Catalog() []registry.Descriptor {
	siteParam := map[string]registry.Param{
		"siteUrl": {Type: registry.TypeString, Required: true, Location: registry.InPath},
	}
	sitemapParams := map[string]registry.Param{
		"siteUrl":  {Type: registry.TypeString, Required: true, Location: registry.InPath},
		"feedpath": {Type: registry.TypeString, Required: true, Location: registry.InPath},
	}

	return []registry.Descriptor{
		{
			Name:     ToolListSites,
			Method:   http.MethodGet,
			Path:     "/webmasters/v3/sites",
			Params:   map[string]registry.Param{},
			Response: registry.ResponseJSON,
		},
		{
			Name:     ToolGetSite,
			Method:   http.MethodGet,
			Path:     "/webmasters/v3/sites/{siteUrl}",
			Params:   siteParam,
			Response: registry.ResponseJSON,
		},
		{
			Name:     ToolAddSite,
			Method:   http.MethodPut,
			Path:     "/webmasters/v3/sites/{siteUrl}",
			Params:   siteParam,
			Response: registry.ResponseEmpty,
		},
		{
			Name:     ToolDeleteSite,
			Method:   http.MethodDelete,
			Path:     "/webmasters/v3/sites/{siteUrl}",
			Params:   siteParam,
			Response: registry.ResponseEmpty,
		},
		{
			Name:     ToolListSitemaps,
			Method:   http.MethodGet,
			Path:     "/webmasters/v3/sites/{siteUrl}/sitemaps",
			Params: map[string]registry.Param{
				"siteUrl":      {Type: registry.TypeString, Required: true, Location: registry.InPath},
				"sitemapIndex": {Type: registry.TypeString, Location: registry.InQuery},
			},
			Response: registry.ResponseJSON,
		},
		{
			Name:     ToolGetSitemap,
			Method:   http.MethodGet,
			Path:     "/webmasters/v3/sites/{siteUrl}/sitemaps/{feedpath}",
			Params:   sitemapParams,
			Response: registry.ResponseJSON,
		},
		{
			Name:     ToolSubmitSitemap,
			Method:   http.MethodPut,
			Path:     "/webmasters/v3/sites/{siteUrl}/sitemaps/{feedpath}",
			Params:   sitemapParams,
			Response: registry.ResponseEmpty,
		},
		{
			Name:     ToolDeleteSitemap,
			Method:   http.MethodDelete,
			Path:     "/webmasters/v3/sites/{siteUrl}/sitemaps/{feedpath}",
			Params:   sitemapParams,
			Response: registry.ResponseEmpty,
		},
		{
			Name:   ToolQuerySearchAnalytics,
			Method: http.MethodPost,
			Path:   "/webmasters/v3/sites/{siteUrl}/searchAnalytics/query",
			Params: map[string]registry.Param{
				"siteUrl":               {Type: registry.TypeString, Required: true, Location: registry.InPath},
				"startDate":             {Type: registry.TypeString, Required: true, Location: registry.InBody},
				"endDate":               {Type: registry.TypeString, Required: true, Location: registry.InBody},
				"dimensions":            {Type: registry.TypeArray, Location: registry.InBody},
				"searchType":            {Type: registry.TypeString, Location: registry.InBody},
				"rowLimit":              {Type: registry.TypeInteger, Location: registry.InBody},
				"startRow":              {Type: registry.TypeInteger, Location: registry.InBody},
				"dimensionFilterGroups": {Type: registry.TypeArray, Location: registry.InBody},
				"aggregationType":       {Type: registry.TypeString, Location: registry.InBody},
				"dataState":             {Type: registry.TypeString, Location: registry.InBody},
			},
			Response: registry.ResponseJSON,
		},
		{
			Name:   ToolInspectURL,
			Method: http.MethodPost,
			Path:   "/v1/urlInspection/index:inspect",
			Params: map[string]registry.Param{
				"inspectionUrl": {Type: registry.TypeString, Required: true, Location: registry.InBody},
				"siteUrl":       {Type: registry.TypeString, Required: true, Location: registry.InBody},
				"languageCode":  {Type: registry.TypeString, Location: registry.InBody},
			},
			Response: registry.ResponseJSON,
		},
	}
}

// NewRegistry builds a registry with the full catalog loaded.
func NewRegistry(baseURL string, client registry.Doer, logger *common.Logger) *registry.Registry {
	reg := registry.New(baseURL, client, logger)
	for _, d := range Catalog() {
		reg.MustRegister(d)
	}
	return reg
}
