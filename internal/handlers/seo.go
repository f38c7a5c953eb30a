package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

var staticPaths = []string{"/", "/courses", "/terms", "/privacy"}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap handles GET /sitemap.xml
func (h *PagesHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	lastMod := h.startedAt.Format(time.RFC3339)
	courses := h.service.Courses()

	set := urlSet{
		Xmlns: sitemapNamespace,
		URLs:  make([]sitemapURL, 0, len(staticPaths)+len(courses)),
	}
	for _, path := range staticPaths {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + path,
			LastMod:    lastMod,
			ChangeFreq: "daily",
			Priority:   "0.7",
		})
	}
	for _, c := range courses {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + courseHref(c),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.logger.Error("failed to encode sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	w.Write(out)
}

// Robots handles GET /robots.txt
func (h *PagesHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "# *\nUser-agent: *\nAllow: /\n\n# Host\nHost: %s\n\n# Sitemaps\nSitemap: %s/sitemap.xml\n", h.baseURL, h.baseURL)
}
