package client

import (
	"context"

	"healthcare-assistant-client/internal/dto"
)

// SystemService hits the health and root-info endpoints, both addressed by
// stripping /api/v1 from the configured base URL. Neither endpoint wraps its
// body in the success envelope, so both decode straight into their DTOs.
type SystemService struct {
	t *transport
}

func (s *SystemService) Health(ctx context.Context) (*dto.HealthStatus, error) {
	return getPlain[dto.HealthStatus](ctx, s.t, s.t.rootEndpoint("/health"))
}

func (s *SystemService) Info(ctx context.Context) (*dto.APIInfo, error) {
	return getPlain[dto.APIInfo](ctx, s.t, s.t.rootEndpoint("/"))
}
