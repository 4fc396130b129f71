package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"kundali-api/internal/adapters/cache/redisc"
	fakeeph "kundali-api/internal/adapters/ephemeris/fake"
	"kundali-api/internal/adapters/geocode/nominatim"
	"kundali-api/internal/adapters/geotime/tzfinder"
	mem "kundali-api/internal/adapters/storage/memory"
	pg "kundali-api/internal/adapters/storage/postgres"
	"kundali-api/internal/domain/charts"
	"kundali-api/internal/domain/matching"
	"kundali-api/internal/middleware"
	"kundali-api/internal/platform/logger"
	"kundali-api/internal/ports/cache"
	"kundali-api/internal/ports/ephemeris"
	"kundali-api/internal/ports/geocode"
	"kundali-api/internal/ports/geotime"
)

type Options struct {
	// Motor de efemérides. Si es nil se usa el fake determinista (modo dev,
	// sin archivos de efemérides).
	Engine ephemeris.Engine

	// Resolver de zona horaria. Si es nil se intenta tzf; si tampoco se puede,
	// queda el resolver que exige utc_offset_hours explícito.
	Resolver geotime.Resolver

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: cache de kundalis derivadas.
	Cache cache.Cache

	// Opcional: reverse geocoding para nombrar lugares al guardar charts.
	Reverser geocode.Reverser

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.UserContext)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	engine := opts.Engine
	if engine == nil {
		engine = fakeeph.New(ephemeris.AyanamsaLahiri)
		log.Warn("using fake ephemeris engine", nil)
	}

	resolver := opts.Resolver
	if resolver == nil {
		if tz, err := tzfinder.New(); err == nil {
			resolver = tz
		} else {
			log.Warn("tz finder unavailable, explicit utc offset required", map[string]any{"error": err.Error()})
			resolver = tzfinder.NewOffsetOnly()
		}
	}

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	var chartsRepo charts.Repository
	if db != nil {
		chartsRepo = pg.NewChartsRepo(db)
	} else {
		chartsRepo = mem.NewChartsRepo()
	}

	kundaliCache := opts.Cache
	if kundaliCache == nil {
		if addr := os.Getenv("REDIS_ADDR"); addr != "" {
			kundaliCache = redisc.New(addr)
		}
	}

	reverser := opts.Reverser
	if reverser == nil && os.Getenv("GEOCODE_ENABLED") == "true" {
		if rev, err := nominatim.New(nominatim.Config{BaseURL: os.Getenv("GEOCODE_BASE_URL")}); err == nil {
			reverser = rev
		}
	}

	// Services por módulo
	chartsSvc := charts.NewService(engine, resolver, chartsRepo, kundaliCache, reverser)
	matchingSvc := matching.NewService()

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		charts.RegisterRoutes(api, chartsSvc)
		matching.RegisterRoutes(api, matchingSvc, chartsSvc)
	})

	return r
}
