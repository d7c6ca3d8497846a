package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	appaccount "github.com/apoorvrathore077/high-stake-dice-backend/internal/app/account"
	appgame "github.com/apoorvrathore077/high-stake-dice-backend/internal/app/game"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/auth"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/config"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/dice"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/ledger"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

func NewRouter(st *store.Store, cfg config.ServerConfig, tokens *auth.TokenService) *chi.Mux {
	led := ledger.New(st)
	gameSvc := appgame.NewService(st, led, dice.CryptoRoller{})
	accountSvc := appaccount.NewService(st, tokens, cfg.InitialBalance)

	gameHandlers := NewGameHandlers(gameSvc)
	userHandlers := NewUserHandlers(accountSvc)
	healthHandlers := NewHealthHandlers(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", healthHandlers.Health())
	r.With(APILogMiddleware()).Get("/", healthHandlers.Root())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())

		r.Post("/users/signup", userHandlers.Signup())
		r.Post("/users/login", userHandlers.Login())

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))
			r.Get("/users/profile", userHandlers.Profile())
			r.Post("/game/placeBet", gameHandlers.PlaceBet())
			r.Get("/game/history", gameHandlers.History())
			r.Get("/game/stats", gameHandlers.Stats())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
