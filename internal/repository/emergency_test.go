package repository_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/shenikar/emergency_locator/internal/geo"
	"github.com/shenikar/emergency_locator/internal/models"
	"github.com/shenikar/emergency_locator/internal/repository"
	"github.com/shenikar/emergency_locator/internal/service"
)

// dublin - точка запроса для всех пространственных тестов
var dublin = geo.Point{Lat: 53.3498, Lng: -6.2603}

type fixture struct {
	name        string
	serviceType models.ServiceType
	distanceKm  float64
	bearingDeg  float64
	is24Hours   bool
}

// Расстояния различаются минимум на 0.5 км, чтобы сфера и сфероид давали одинаковый порядок
var fixtures = []fixture{
	{"Store Street Garda Station", models.ServiceTypePolice, 0.5, 90, true},
	{"Mater Misericordiae Hospital", models.ServiceTypeHospital, 1.2, 0, true},
	{"Tara Street Fire Station", models.ServiceTypeFire, 1.8, 135, true},
	{"St. James's Hospital", models.ServiceTypeHospital, 2.5, 250, true},
	{"Pearse Street Garda Station", models.ServiceTypePolice, 3.3, 180, false},
	{"Phibsborough Fire Station", models.ServiceTypeFire, 4.1, 330, true},
	{"Beaumont Hospital", models.ServiceTypeHospital, 6.0, 20, true},
	{"Rathmines Garda Station", models.ServiceTypePolice, 8.5, 200, false},
	{"Dun Laoghaire Fire Station", models.ServiceTypeFire, 12.0, 120, true},
	{"Tallaght University Hospital", models.ServiceTypeHospital, 20.0, 225, false},
}

// offset возвращает точку на заданном расстоянии и азимуте от origin (плоское приближение)
func offset(origin geo.Point, distanceKm, bearingDeg float64) geo.Point {
	const kmPerDegree = 111.195
	b := bearingDeg * math.Pi / 180
	dLat := distanceKm * math.Cos(b) / kmPerDegree
	dLng := distanceKm * math.Sin(b) / (kmPerDegree * math.Cos(origin.Lat*math.Pi/180))
	return geo.Point{Lat: origin.Lat + dLat, Lng: origin.Lng + dLng}
}

// EmergencyServiceRepositorySuite тестирует репозиторий на реальной базе PostGIS
type EmergencyServiceRepositorySuite struct {
	suite.Suite
	pool   *pgxpool.Pool
	repo   service.EmergencyServiceRepository
	ctx    context.Context
	seeded []*models.EmergencyService
}

func TestEmergencyServiceRepositorySuite(t *testing.T) {
	suite.Run(t, new(EmergencyServiceRepositorySuite))
}

// SetupSuite запускается один раз перед всеми тестами
func (s *EmergencyServiceRepositorySuite) SetupSuite() {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		s.T().Skip("TEST_DATABASE_URL is not set, skipping PostGIS integration tests")
	}
	s.ctx = context.Background()

	migrationURL := strings.Replace(databaseURL, "postgres://", "pgx5://", 1)
	m, err := migrate.New("file://../../migrations", migrationURL)
	s.Require().NoError(err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.Require().NoError(err)
	}

	s.pool, err = pgxpool.New(s.ctx, databaseURL)
	s.Require().NoError(err)
	s.repo = repository.NewEmergencyServiceRepository(s.pool)
}

// TearDownSuite запускается один раз после всех тестов
func (s *EmergencyServiceRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SetupTest очищает таблицу и загружает фикстуры перед каждым тестом
func (s *EmergencyServiceRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE emergency_services")
	s.Require().NoError(err)

	s.seeded = s.seeded[:0]
	for _, f := range fixtures {
		svc := &models.EmergencyService{
			Name:        f.name,
			ServiceType: f.serviceType,
			Address:     f.name + ", Dublin",
			Phone:       "+353 1 000 0000",
			Location:    offset(dublin, f.distanceKm, f.bearingDeg),
			Capacity:    10,
			Is24Hours:   f.is24Hours,
		}
		s.Require().NoError(s.repo.Create(s.ctx, svc))
		s.seeded = append(s.seeded, svc)
	}
}

// byHaversine возвращает ID фикстур, отсортированные по расстоянию до точки
func (s *EmergencyServiceRepositorySuite) byHaversine(point geo.Point, filter func(*models.EmergencyService) bool) []uuid.UUID {
	candidates := make([]*models.EmergencyService, 0, len(s.seeded))
	for _, svc := range s.seeded {
		if filter == nil || filter(svc) {
			candidates = append(candidates, svc)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return geo.DistanceMeters(point, candidates[i].Location) < geo.DistanceMeters(point, candidates[j].Location)
	})
	ids := make([]uuid.UUID, len(candidates))
	for i, svc := range candidates {
		ids[i] = svc.ID
	}
	return ids
}

func nearbyIDs(items []*models.NearbyService) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// ============================================================================
// CRUD
// ============================================================================

func (s *EmergencyServiceRepositorySuite) TestCreateAndGetByID() {
	created := s.seeded[1]

	got, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.Name, got.Name)
	s.Equal(models.ServiceTypeHospital, got.ServiceType)
	s.InDelta(created.Location.Lat, got.Location.Lat, 1e-9)
	s.InDelta(created.Location.Lng, got.Location.Lng, 1e-9)
	s.False(got.CreatedAt.IsZero())
}

func (s *EmergencyServiceRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, models.ErrNotFound)
}

func (s *EmergencyServiceRepositorySuite) TestUpdate() {
	svc := s.seeded[0]
	svc.Name = "Store Street Garda Station (renamed)"
	svc.Capacity = 42

	s.Require().NoError(s.repo.Update(s.ctx, svc))

	got, err := s.repo.GetByID(s.ctx, svc.ID)
	s.Require().NoError(err)
	s.Equal(svc.Name, got.Name)
	s.Equal(42, got.Capacity)
}

func (s *EmergencyServiceRepositorySuite) TestUpdate_NotFound() {
	svc := *s.seeded[0]
	svc.ID = uuid.New()
	s.ErrorIs(s.repo.Update(s.ctx, &svc), models.ErrNotFound)
}

func (s *EmergencyServiceRepositorySuite) TestCreate_CheckViolation() {
	svc := &models.EmergencyService{
		Name:        "Broken",
		ServiceType: "ambulance",
		Address:     "Nowhere",
		Location:    dublin,
	}
	s.ErrorIs(s.repo.Create(s.ctx, svc), models.ErrInvalidParameter)
}

func (s *EmergencyServiceRepositorySuite) TestDelete() {
	id := s.seeded[2].ID
	s.Require().NoError(s.repo.Delete(s.ctx, id))

	_, err := s.repo.GetByID(s.ctx, id)
	s.ErrorIs(err, models.ErrNotFound)
	s.ErrorIs(s.repo.Delete(s.ctx, id), models.ErrNotFound)
}

func (s *EmergencyServiceRepositorySuite) TestList_FilterByType() {
	all, err := s.repo.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, len(fixtures))

	fire, err := s.repo.List(s.ctx, models.ServiceTypeFire)
	s.Require().NoError(err)
	s.Len(fire, 3)
	for i, svc := range fire {
		s.Equal(models.ServiceTypeFire, svc.ServiceType)
		if i > 0 {
			s.LessOrEqual(fire[i-1].Name, svc.Name)
		}
	}
}

// ============================================================================
// Пространственные запросы
// ============================================================================

func (s *EmergencyServiceRepositorySuite) TestFindNearest_ReturnsFiveClosest() {
	got, err := s.repo.FindNearest(s.ctx, dublin, 5, "")
	s.Require().NoError(err)
	s.Require().Len(got, 5)

	s.Equal(s.byHaversine(dublin, nil)[:5], nearbyIDs(got))
	for i, item := range got {
		expected := geo.DistanceMeters(dublin, item.Location)
		s.InEpsilon(expected, item.Distance.Meters, 0.01)
		s.Equal(geo.MetersToKm(item.Distance.Meters), item.Distance.Kilometers)
		if i > 0 {
			s.LessOrEqual(got[i-1].Distance.Meters, item.Distance.Meters)
		}
	}
}

func (s *EmergencyServiceRepositorySuite) TestFindNearest_FilterAppliedBeforeLimit() {
	got, err := s.repo.FindNearest(s.ctx, dublin, 2, models.ServiceTypeFire)
	s.Require().NoError(err)

	isFire := func(svc *models.EmergencyService) bool { return svc.ServiceType == models.ServiceTypeFire }
	s.Equal(s.byHaversine(dublin, isFire)[:2], nearbyIDs(got))
}

func (s *EmergencyServiceRepositorySuite) TestFindWithinRadius() {
	const radiusKm = 3.0
	got, err := s.repo.FindWithinRadius(s.ctx, dublin, radiusKm*1000, "")
	s.Require().NoError(err)

	inside := s.byHaversine(dublin, func(svc *models.EmergencyService) bool {
		return geo.DistanceMeters(dublin, svc.Location) <= radiusKm*1000
	})
	s.Equal(inside, nearbyIDs(got))
	for _, item := range got {
		s.LessOrEqual(item.Distance.Meters, radiusKm*1000)
	}
}

func (s *EmergencyServiceRepositorySuite) TestFindWithinRadius_WithType() {
	got, err := s.repo.FindWithinRadius(s.ctx, dublin, 10000, models.ServiceTypeHospital)
	s.Require().NoError(err)
	s.Len(got, 3)
	for _, item := range got {
		s.Equal(models.ServiceTypeHospital, item.ServiceType)
	}
}

func (s *EmergencyServiceRepositorySuite) TestFindByType() {
	got, err := s.repo.FindByType(s.ctx, dublin, models.ServiceTypePolice)
	s.Require().NoError(err)
	s.Require().Len(got, 3)

	isPolice := func(svc *models.EmergencyService) bool { return svc.ServiceType == models.ServiceTypePolice }
	s.Equal(s.byHaversine(dublin, isPolice), nearbyIDs(got))
}

// seedTied создает несколько больниц в одной точке, ближе любой фикстуры, и возвращает их ID по возрастанию
func (s *EmergencyServiceRepositorySuite) seedTied(point geo.Point, n int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		svc := &models.EmergencyService{
			Name:        fmt.Sprintf("Temple Street Clinic %d", i),
			ServiceType: models.ServiceTypeHospital,
			Address:     "Temple Street, Dublin",
			Location:    point,
			Is24Hours:   true,
		}
		s.Require().NoError(s.repo.Create(s.ctx, svc))
		ids = append(ids, svc.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (s *EmergencyServiceRepositorySuite) TestSpatialQueries_TiesOrderedByID() {
	tied := s.seedTied(offset(dublin, 0.2, 45), 4)

	nearest, err := s.repo.FindNearest(s.ctx, dublin, len(tied), "")
	s.Require().NoError(err)
	s.Equal(tied, nearbyIDs(nearest))

	within, err := s.repo.FindWithinRadius(s.ctx, dublin, 300, "")
	s.Require().NoError(err)
	s.Equal(tied, nearbyIDs(within))

	byType, err := s.repo.FindByType(s.ctx, dublin, models.ServiceTypeHospital)
	s.Require().NoError(err)
	s.Require().GreaterOrEqual(len(byType), len(tied))
	s.Equal(tied, nearbyIDs(byType)[:len(tied)])
}

func (s *EmergencyServiceRepositorySuite) TestGetStatistics() {
	stats, err := s.repo.GetStatistics(s.ctx)
	s.Require().NoError(err)

	s.Equal(10, stats.Total)
	s.Equal(4, stats.Hospitals)
	s.Equal(3, stats.Police)
	s.Equal(3, stats.Fire)
	s.Equal(7, stats.Available24Hours)
}
