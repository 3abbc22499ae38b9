package catalog

import (
	"context"
	"math"
	"time"

	"github.com/patrickmn/go-cache"
)

type PropertyRepository interface {
	GetActiveProperties(ctx context.Context) ([]Property, error)
	GetPropertyByID(ctx context.Context, id string) (Property, error)
}

type Service struct {
	repo  PropertyRepository
	cache *cache.Cache
}

func NewService(repo PropertyRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(1*time.Minute, 5*time.Minute),
	}
}

func (s *Service) ListActiveProperties(ctx context.Context) ([]Property, error) {
	return s.repo.GetActiveProperties(ctx)
}

func (s *Service) FindProperty(ctx context.Context, id string) (Property, error) {
	cached, found := s.cache.Get(id)

	if found {
		return cached.(Property), nil
	}

	property, err := s.repo.GetPropertyByID(ctx, id)

	if err != nil {
		return Property{}, err
	}

	s.cache.Set(id, property, cache.DefaultExpiration)

	return property, nil
}

func (s *Service) GetDayPassOption(ctx context.Context, propertyID, dayPassID string) (DayPassOption, error) {
	property, err := s.FindProperty(ctx, propertyID)

	if err != nil {
		return DayPassOption{}, err
	}

	pass, found := property.DayPassOption(dayPassID)

	if !found || !pass.IsActive {
		return DayPassOption{}, ErrDayPassNotFound
	}

	return pass, nil
}

func (s *Service) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]Property, error) {
	properties, err := s.repo.GetActiveProperties(ctx)

	if err != nil {
		return nil, err
	}

	nearby := []Property{}

	for _, property := range properties {
		distance := distanceKm(lat, lon, property.Address.Latitude, property.Address.Longitude)

		if distance <= radiusKm {
			nearby = append(nearby, property)
		}
	}

	return nearby, nil
}

const earthRadiusKm = 6371.0

// Haversine distance between two coordinates.
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
