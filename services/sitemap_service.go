package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/blogify-backend/config"
	"github.com/blogify-backend/repositories"
)

// sitemapURL is one <url> entry of the sitemap document.
type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService builds the sitemap from the published blog set and pushes
// it to the web root over FTP. The latest document is kept in memory so it
// can also be served directly.
type SitemapService struct {
	blogRepo     *repositories.BlogRepository
	categoryRepo *repositories.CategoryRepository

	mu     sync.RWMutex
	latest []byte
}

var (
	sitemapOnce     sync.Once
	sitemapInstance *SitemapService
)

// NewSitemapService returns the shared sitemap service. A single instance is
// shared so concurrent regenerations serialize on one cache.
func NewSitemapService() *SitemapService {
	sitemapOnce.Do(func() {
		sitemapInstance = &SitemapService{
			blogRepo:     repositories.NewBlogRepository(),
			categoryRepo: repositories.NewCategoryRepository(),
		}
	})
	return sitemapInstance
}

// Regenerate rebuilds the sitemap and uploads it. Upload failures are not
// fatal: the in-memory copy still serves the fresh document.
func (s *SitemapService) Regenerate() error {
	doc, err := s.build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.latest = doc
	s.mu.Unlock()

	if err := s.upload(doc); err != nil {
		log.Printf("Warning: sitemap upload failed: %v", err)
	}
	return nil
}

// Latest returns the most recently generated document, building one on
// first use.
func (s *SitemapService) Latest() ([]byte, error) {
	s.mu.RLock()
	doc := s.latest
	s.mu.RUnlock()

	if doc != nil {
		return doc, nil
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, nil
}

func (s *SitemapService) build() ([]byte, error) {
	siteURL := config.GetEnv("SITE_URL", "https://blogify.local")
	now := time.Now().Format("2006-01-02")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: siteURL, LastMod: now, ChangeFreq: "daily", Priority: "1.0"},
			{Loc: siteURL + "/blogs", LastMod: now, ChangeFreq: "daily", Priority: "0.9"},
			{Loc: siteURL + "/about", ChangeFreq: "monthly", Priority: "0.5"},
			{Loc: siteURL + "/contact", ChangeFreq: "monthly", Priority: "0.5"},
		},
	}

	categories, err := s.categoryRepo.FindEnabledWithCount()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        siteURL + "/category/" + category.Slug,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	entries, err := s.blogRepo.PublishedSlugs()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        siteURL + "/blogs/" + entry.Slug,
			LastMod:    entry.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// upload pushes the document to the configured FTP web root. With no
// FTP_HOST set it falls back to a local file so development still works.
func (s *SitemapService) upload(doc []byte) error {
	host := config.GetEnv("FTP_HOST", "")
	if host == "" {
		path := config.GetEnv("SITEMAP_PATH", "sitemap.xml")
		return os.WriteFile(path, doc, 0644)
	}

	conn, err := ftp.Dial(host+":"+config.GetEnv("FTP_PORT", "21"), ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return fmt.Errorf("ftp dial: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(config.GetEnv("FTP_USER", ""), config.GetEnv("FTP_PASSWORD", "")); err != nil {
		return fmt.Errorf("ftp login: %w", err)
	}

	remote := config.GetEnv("FTP_SITEMAP_PATH", "sitemap.xml")
	if err := conn.Stor(remote, bytes.NewReader(doc)); err != nil {
		return fmt.Errorf("ftp store: %w", err)
	}
	return nil
}
