package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/viewer-shell/internal/logger"
	"github.com/MKhiriev/viewer-shell/models"
)

type overrideService struct {
	logger *logger.Logger
}

func NewOverrideService(logger *logger.Logger) OverrideService {
	return &overrideService{logger: logger}
}

func (s *overrideService) EncodeOverride(ctx context.Context, override models.Config) (string, error) {
	if override == nil {
		return "", fmt.Errorf("%w: body must be a JSON object", ErrInvalidOverrideBody)
	}

	allowed := AllowedOverride(override)
	if len(allowed) == 0 {
		return "", fmt.Errorf("%w: none of %v is set", ErrInvalidOverrideBody, overrideAllowList)
	}

	return EncodeOverride(allowed)
}
