// Package server Plutus
//
// The Plutus is a service which provides access to creators, subscriptions and gated posts
// stored in the CreatorProfile and ContentPost contracts, direct messages and media uploads.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 0.1.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
//     SecurityDefinitions:
//       bearer:
//         type: apiKey
//         name: Authorization
//         in: header
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	"github.com/Decentr-net/plutus/internal/api"
	"github.com/Decentr-net/plutus/internal/auth"
	"github.com/Decentr-net/plutus/internal/media"
	mm "github.com/Decentr-net/plutus/internal/middleware"
	"github.com/Decentr-net/plutus/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const (
	maxBodySize = 64 * 1024
	// maxUploadBodySize leaves a room for multipart headers over the biggest upload policy.
	maxUploadBodySize = media.MB*100 + media.MB
	// uploadMemory is how much of multipart form is kept in memory, the rest goes to temporary files.
	uploadMemory = 32 * media.MB

	creatorsCacheTTL = time.Minute
)

type server struct {
	s service.Service
	a *auth.Authenticator
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, a *auth.Authenticator, cache mm.Storage, r chi.Router, timeout time.Duration) {
	r.Use(
		api.LoggerMiddleware,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		api.RequestIDMiddleware,
		api.RecovererMiddleware,
		api.TimeoutMiddleware(timeout),
	)

	srv := server{
		s: s,
		a: a,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(api.BodyLimiterMiddleware(maxBodySize))

			r.Get("/auth/challenge", srv.getChallenge)
			r.Post("/auth", srv.login)

			r.Get("/creators", mm.Cached(cache, creatorsCacheTTL, srv.listCreators))
			r.Get("/usernames/{username}", srv.getCreatorByUsername)
			r.Get("/posts/{id}/comments", srv.getComments)
			r.Get("/url", srv.getSignedURL)

			r.Group(func(r chi.Router) {
				r.Use(a.Middleware(false))

				r.Get("/creators/{address}", srv.getCreatorPage)
				r.Get("/creators/{address}/posts", srv.listCreatorPosts)
				r.Get("/posts/{id}", srv.getPost)
			})

			r.Group(func(r chi.Router) {
				r.Use(a.Middleware(true))

				r.Get("/subscriptions/{creator}", srv.getSubscription)
				r.Get("/uploads", srv.listUploads)
				r.Get("/messages", srv.listConversations)
				r.Get("/messages/{peer}", srv.listMessages)
				r.Post("/messages/{peer}", srv.sendMessage)
				r.Post("/messages/{peer}/read", srv.markRead)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(
				api.BodyLimiterMiddleware(maxUploadBodySize),
				a.Middleware(false),
			)

			r.Post("/upload", srv.upload)
		})
	})
}
