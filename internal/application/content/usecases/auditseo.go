package usecases

import (
	"context"
	"fmt"

	"github.com/beacon-cms/beacon/internal/application/content/dto"
	"github.com/beacon-cms/beacon/internal/domain/content"
	"github.com/beacon-cms/beacon/internal/shared/errors"
	"github.com/beacon-cms/beacon/internal/shared/logger"
	"github.com/beacon-cms/beacon/internal/shared/utils"
)

const (
	maxMetaTitleLength    = 60
	minMetaDescriptionLen = 50
	maxMetaDescriptionLen = 160
)

// AuditSEOUseCase produces a read-only report over active pages: metadata
// presence and length checks scored 0-100 per page.
type AuditSEOUseCase struct {
	pageRepo    content.PageRepository
	sectionRepo content.PageSectionRepository
	logger      logger.Interface
}

func NewAuditSEOUseCase(pageRepo content.PageRepository, sectionRepo content.PageSectionRepository, logger logger.Interface) *AuditSEOUseCase {
	return &AuditSEOUseCase{
		pageRepo:    pageRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

func (uc *AuditSEOUseCase) Execute(ctx context.Context) (*dto.SEOAuditDTO, error) {
	pages, err := uc.pageRepo.List(ctx, true)
	if err != nil {
		uc.logger.Errorw("failed to list pages for SEO audit", "error", err)
		return nil, errors.NewInternalError("failed to audit pages")
	}

	report := &dto.SEOAuditDTO{Pages: make([]*dto.PageAuditDTO, 0, len(pages))}
	total := 0
	for _, page := range pages {
		sections, err := uc.sectionRepo.ListVisibleByPageID(ctx, page.ID())
		if err != nil {
			uc.logger.Errorw("failed to list sections for SEO audit", "error", err, "page_id", page.ID())
			return nil, errors.NewInternalError("failed to audit pages")
		}
		audit := auditPage(page, len(sections))
		report.Pages = append(report.Pages, audit)
		total += audit.Score
	}
	if len(report.Pages) > 0 {
		report.AverageScore = total / len(report.Pages)
	}
	return report, nil
}

func auditPage(page *content.Page, sectionCount int) *dto.PageAuditDTO {
	checks := []*dto.SEOCheckDTO{
		check("title", page.Title() != "", "page title is empty"),
		check("meta_title", page.MetaTitle() != "" && len(page.MetaTitle()) <= maxMetaTitleLength,
			fmt.Sprintf("meta title should be 1-%d characters", maxMetaTitleLength)),
		check("meta_description",
			len(page.MetaDescription()) >= minMetaDescriptionLen && len(page.MetaDescription()) <= maxMetaDescriptionLen,
			fmt.Sprintf("meta description should be %d-%d characters", minMetaDescriptionLen, maxMetaDescriptionLen)),
		check("slug", utils.ValidateSlug(page.Slug()) == nil, "slug should be lowercase letters, digits and hyphens"),
		check("content", sectionCount > 0, "page has no visible sections"),
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	return &dto.PageAuditDTO{
		Slug:   page.Slug(),
		Score:  passed * 100 / len(checks),
		Checks: checks,
	}
}

func check(name string, passed bool, failMessage string) *dto.SEOCheckDTO {
	c := &dto.SEOCheckDTO{Name: name, Passed: passed}
	if !passed {
		c.Message = failMessage
	}
	return c
}
