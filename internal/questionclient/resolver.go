package questionclient

import (
	"fmt"
	"strings"

	"quizhub/internal/domain"
)

// Resolver maps a logical service name to a base URL. It stands in for the
// service registry: the quiz service asks for "question-service" and gets
// back wherever that currently lives.
type Resolver interface {
	Resolve(name string) (string, error)
}

// StaticResolver resolves names from a fixed map, typically loaded from
// config with an environment override.
type StaticResolver struct {
	services map[string]string
}

func NewStaticResolver(services map[string]string) *StaticResolver {
	return &StaticResolver{services: services}
}

func (r *StaticResolver) Resolve(name string) (string, error) {
	base, ok := r.services[name]
	if !ok || base == "" {
		return "", fmt.Errorf("%w: no address for service %q", domain.ErrUnavailable, name)
	}
	return strings.TrimRight(base, "/"), nil
}
