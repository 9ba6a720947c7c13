package network

import "context"

type NetworkUseCase interface {
	Legs(ctx context.Context) ([]Leg, error)
	RouteOptions(ctx context.Context, from, to string) ([]RouteOption, error)
	Stats(ctx context.Context) (*Stats, error)
}

// NetworkService exposes a built network behind the use-case interface the
// handlers consume. The network is static, so every call is a pure lookup.
type NetworkService struct {
	net *Network
}

func NewNetworkService(net *Network) *NetworkService {
	return &NetworkService{net: net}
}

func (s *NetworkService) Legs(_ context.Context) ([]Leg, error) {
	return s.net.Legs(), nil
}

func (s *NetworkService) RouteOptions(_ context.Context, from, to string) ([]RouteOption, error) {
	return s.net.RouteOptions(from, to)
}

func (s *NetworkService) Stats(_ context.Context) (*Stats, error) {
	stats := s.net.Stats()
	return &stats, nil
}

var _ NetworkUseCase = (*NetworkService)(nil)
