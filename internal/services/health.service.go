package services

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthService reports ok only when every backing store answers.
type HealthService struct {
	deps []Pinger
}

func NewHealthService(db Pinger, extra ...Pinger) *HealthService {
	return &HealthService{deps: append([]Pinger{db}, extra...)}
}

func (s *HealthService) Check(ctx context.Context) error {
	for _, d := range s.deps {
		if err := d.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
