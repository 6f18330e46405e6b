package usecases

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
)

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GenerateSitemapUseCase renders the XML sitemap over active pages.
type GenerateSitemapUseCase struct {
	pageRepo content.PageRepository
	baseURL  string
	logger   logger.Interface
}

func NewGenerateSitemapUseCase(pageRepo content.PageRepository, baseURL string, logger logger.Interface) *GenerateSitemapUseCase {
	return &GenerateSitemapUseCase{
		pageRepo: pageRepo,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

func (uc *GenerateSitemapUseCase) Execute(ctx context.Context) ([]byte, error) {
	pages, err := uc.pageRepo.List(ctx, true)
	if err != nil {
		uc.logger.Errorw("failed to list pages for sitemap", "error", err)
		return nil, errors.NewInternalError("failed to generate sitemap")
	}

	urlSet := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(pages)),
	}
	for _, page := range pages {
		loc := uc.baseURL + "/" + page.Slug()
		if page.Slug() == "home" {
			loc = uc.baseURL + "/"
		}
		urlSet.URLs = append(urlSet.URLs, sitemapURL{
			Loc:      loc,
			LastMod:  page.UpdatedAt().Format("2006-01-02"),
			Priority: fmt.Sprintf("%.1f", page.SitemapPriority()),
		})
	}

	payload, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		uc.logger.Errorw("failed to marshal sitemap", "error", err)
		return nil, errors.NewInternalError("failed to generate sitemap")
	}

	return append([]byte(xml.Header), payload...), nil
}
