package impl

import (
	"hobbyexplorer/config"
	domainerrors "hobbyexplorer/internal/domain/errors"
	"hobbyexplorer/internal/domain/repository"
	"hobbyexplorer/internal/usecase"
)

const (
	fallbackDefaultLimit = 10
	fallbackMaxLimit     = 100
)

// pageLimits resolves listing windows against the configured bounds.
type pageLimits struct {
	defaultLimit int
	maxLimit     int
}

func newPageLimits(cfg *config.Config) pageLimits {
	limits := pageLimits{defaultLimit: fallbackDefaultLimit, maxLimit: fallbackMaxLimit}
	if cfg == nil || cfg.Pagination == nil {
		return limits
	}

	if cfg.Pagination.MaxLimit > 0 {
		limits.maxLimit = min(cfg.Pagination.MaxLimit, fallbackMaxLimit)
	}
	if cfg.Pagination.DefaultLimit > 0 {
		limits.defaultLimit = min(cfg.Pagination.DefaultLimit, limits.maxLimit)
	}

	return limits
}

// resolve rejects negative values and caps the limit at the maximum.
func (p pageLimits) resolve(input usecase.PageInput) (repository.Page, error) {
	if input.Offset < 0 {
		return repository.Page{}, domainerrors.ErrValidationFailed.WithDetails("offset: must not be negative")
	}

	limit := p.defaultLimit
	if input.Limit != nil {
		if *input.Limit < 0 {
			return repository.Page{}, domainerrors.ErrValidationFailed.WithDetails("limit: must not be negative")
		}
		limit = min(*input.Limit, p.maxLimit)
	}

	return repository.Page{Offset: input.Offset, Limit: limit}, nil
}
