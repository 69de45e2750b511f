package usecase

import (
	"sort"
	"ttsweb/domain"
	"ttsweb/pkg/log"

	"github.com/samber/lo"
)

// CatalogUsecase serves the fixed option lists behind the form's dropdowns
// and the footer statistics.
type CatalogUsecase struct {
	l *log.Logger
}

func NewCatalogUsecase(l *log.Logger) *CatalogUsecase {
	return &CatalogUsecase{l: l.WithModule("CatalogUsecase")}
}

func (c *CatalogUsecase) Models() []domain.Option {
	return options(domain.Models)
}

func (c *CatalogUsecase) Voices() []domain.Option {
	return options(domain.Voices)
}

func (c *CatalogUsecase) Languages() []domain.Option {
	return options(domain.Languages)
}

func (c *CatalogUsecase) Stats() domain.FormStats {
	return domain.FormStats{
		Models:      len(domain.Models),
		Voices:      len(domain.Voices),
		Languages:   len(domain.Languages),
		MaxSpeakers: domain.MaxSpeakers,
	}
}

func options(m map[string]string) []domain.Option {
	opts := lo.MapToSlice(m, func(id string, label string) domain.Option {
		return domain.Option{Id: id, Label: label}
	})
	sort.Slice(opts, func(i, j int) bool { return opts[i].Id < opts[j].Id })
	return opts
}
