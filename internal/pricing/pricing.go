package pricing

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/cache"
	"github.com/umalmyha/imaging-leads/internal/model"
)

const (
	minPrice        = 300
	priceSpread     = 1700
	minLocations    = 5
	locationsSpread = 6
	coordsJitter    = 0.05
)

const (
	statusActive         = "active"
	statusMostAffordable = "most-affordable"
)

type place struct {
	city  string
	state string
	lat   float64
	lng   float64
}

var unknownPlace = place{city: "Unknown City", state: "CA", lat: 37.7749, lng: -122.4194}

var places = map[string]place{
	"94103": {city: "San Francisco", state: "CA", lat: 37.7725, lng: -122.4091},
	"10001": {city: "New York", state: "NY", lat: 40.7506, lng: -73.9972},
	"60601": {city: "Chicago", state: "IL", lat: 41.8853, lng: -87.6216},
	"90210": {city: "Beverly Hills", state: "CA", lat: 34.0901, lng: -118.4065},
	"75201": {city: "Dallas", state: "TX", lat: 32.7877, lng: -96.7995},
	"02108": {city: "Boston", state: "MA", lat: 42.3576, lng: -71.0636},
	"33139": {city: "Miami Beach", state: "FL", lat: 25.7834, lng: -80.1340},
	"98101": {city: "Seattle", state: "WA", lat: 47.6114, lng: -122.3305},
}

var (
	facilityPrefixes = []string{"Advanced", "Premier", "Elite", "Comprehensive", "Modern", "Quality", "Precision", "Reliable", "Affordable", "Community"}
	facilitySuffixes = []string{"Imaging Center", "Diagnostic Imaging", "Radiology", "Medical Imaging", "Scan Center", "Health Imaging", "Diagnostic Center", "MRI Center", "Imaging Associates", "Radiology Group"}
	streets          = []string{"Main St", "Oak Ave", "Maple Rd", "Washington Blvd", "Park Ave", "Market St", "Broadway", "Highland Ave", "Sunset Blvd", "Lincoln Ave"}
	providers        = []string{"HealthNet", "Blue Shield", "Aetna", "UnitedHealth", "Cigna", "Humana", "Kaiser", "Medicare", "Medicaid", "Self-pay"}
	availabilities   = []string{"Next day", "Same week", "2-3 days", "This week", "Next week", "Today"}
)

// Provider looks up imaging centers near zip code offering scan of given type
type Provider interface {
	Locations(context.Context, string, model.ImagingType) ([]model.ScanLocation, error)
}

type mockProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockProvider builds Provider generating random imaging centers
func NewMockProvider(seed int64) Provider {
	return &mockProvider{rnd: rand.New(rand.NewSource(seed))} //nolint:gosec // prices are fake
}

func (p *mockProvider) Locations(_ context.Context, zip string, t model.ImagingType) ([]model.ScanLocation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pl, ok := places[zip]
	if !ok {
		pl = unknownPlace
	}

	n := p.rnd.Intn(locationsSpread) + minLocations
	locations := make([]model.ScanLocation, 0, n)

	for i := 0; i < n; i++ {
		locations = append(locations, model.ScanLocation{
			ID:           fmt.Sprintf("loc-%s-%d", zip, i),
			Name:         fmt.Sprintf("%s %s", p.pick(facilityPrefixes), p.pick(facilitySuffixes)),
			Address:      fmt.Sprintf("%d %s", p.rnd.Intn(2000)+100, p.pick(streets)),
			City:         pl.city,
			State:        pl.state,
			ZipCode:      zip,
			Price:        p.rnd.Intn(priceSpread) + minPrice,
			Availability: p.pick(availabilities),
			Distance:     math.Round((p.rnd.Float64()*19.5+0.5)*10) / 10,
			Lat:          pl.lat + (p.rnd.Float64()*2-1)*coordsJitter,
			Lng:          pl.lng + (p.rnd.Float64()*2-1)*coordsJitter,
			Type:         strings.ToUpper(string(t)),
			Provider:     p.pick(providers),
			Status:       statusActive,
		})
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].Price < locations[j].Price
	})
	locations[0].Status = statusMostAffordable

	return locations, nil
}

func (p *mockProvider) pick(values []string) string {
	return values[p.rnd.Intn(len(values))]
}

type cachingProvider struct {
	next  Provider
	cache cache.LocationCache
}

// NewCachingProvider wraps Provider, so lookups for the same zip code and scan type return the same list
func NewCachingProvider(next Provider, c cache.LocationCache) Provider {
	return &cachingProvider{next: next, cache: c}
}

func (p *cachingProvider) Locations(ctx context.Context, zip string, t model.ImagingType) ([]model.ScanLocation, error) {
	cached, ok, err := p.cache.Find(ctx, zip, t)
	if err != nil {
		logrus.Warnf("failed to read locations from cache - %v", err)
	} else if ok {
		return cached, nil
	}

	locations, err := p.next.Locations(ctx, zip, t)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Cache(ctx, zip, t, locations); err != nil {
		logrus.Warnf("failed to cache locations - %v", err)
	}
	return locations, nil
}
