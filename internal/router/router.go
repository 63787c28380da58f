package router

import (
	"database/sql"
	"net/http"

	mem "pet-adoption-market/internal/adapters/storage/memory"
	pg "pet-adoption-market/internal/adapters/storage/postgres"
	"pet-adoption-market/internal/adapters/objectstore/localpresign"
	"pet-adoption-market/internal/domain/applications"
	"pet-adoption-market/internal/domain/lostfound"
	"pet-adoption-market/internal/domain/pets"
	"pet-adoption-market/internal/domain/users"
	"pet-adoption-market/internal/domain/vets"
	"pet-adoption-market/internal/middleware"
	"pet-adoption-market/internal/platform/metrics"
	"pet-adoption-market/internal/ports/auth"
	"pet-adoption-market/internal/ports/objectstore"

	_ "pet-adoption-market/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil = dev mode (debug headers)

	// DB nil means in-memory stores (dev and tests).
	DB *sql.DB

	// Presigner nil falls back to the local stub.
	Presigner objectstore.Presigner

	// Metrics nil disables the /metrics endpoint.
	Metrics *metrics.HTTP

	Logger zerolog.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		petRepo   pets.Repository
		appRepo   applications.Repository
		userRepo  users.Repository
		vetRepo   vets.Repository
		boardRepo lostfound.Repository
	)

	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		appRepo = pg.NewApplicationsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
		vetRepo = pg.NewVetsRepo(opts.DB)
		boardRepo = pg.NewLostFoundRepo(opts.DB)
	} else {
		memPets := mem.NewPetRepo()
		memUsers := mem.NewUserRepo()
		petRepo = memPets
		appRepo = mem.NewApplicationsRepo(memPets)
		userRepo = memUsers
		vetRepo = mem.NewVetsRepo(memUsers)
		boardRepo = mem.NewLostFoundRepo()
	}

	presigner := opts.Presigner
	if presigner == nil {
		presigner = localpresign.New("")
	}

	petsSvc := pets.NewService(petRepo)
	appsSvc := applications.NewService(appRepo)
	usersSvc := users.NewService(userRepo)
	vetsSvc := vets.NewService(vetRepo, presigner)
	boardSvc := lostfound.NewService(boardRepo)

	pets.RegisterRoutes(r, petsSvc)
	applications.RegisterRoutes(r, appsSvc)
	users.RegisterRoutes(r, usersSvc)
	vets.RegisterRoutes(r, vetsSvc)
	lostfound.RegisterRoutes(r, boardSvc)

	return r
}
