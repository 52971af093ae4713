package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ozodbek/blogapi/internal/api/http/handler"
	"github.com/ozodbek/blogapi/internal/api/http/middleware"
	"github.com/ozodbek/blogapi/internal/logger"
)

// actionRoute binds one action name to its method-gated handlers.
type actionRoute struct {
	get  http.HandlerFunc
	post http.HandlerFunc
}

// New builds the API router: /api dispatches on the action query
// parameter, /api/captcha serves the challenge image.
func New(h *handler.Handler, log *logger.Logger, allowedOrigin string) http.Handler {
	actions := map[string]actionRoute{
		"register":             {post: h.Register},
		"verify-email":         {post: h.VerifyEmail},
		"login":                {post: h.Login},
		"logout":               {post: h.Logout},
		"posts":                {get: h.Posts},
		"post":                 {get: h.Post},
		"like":                 {post: h.Like},
		"comments":             {get: h.Comments, post: h.AddComment},
		"contact":              {post: h.Contact},
		"newsletter-subscribe": {post: h.NewsletterSubscribe},
		"admin-newsletter":     {get: h.AdminNewsletter},
		"upload-avatar":        {post: h.UploadAvatar},
		"test":                 {get: h.Test, post: h.Test},
	}

	dispatch := func(w http.ResponseWriter, r *http.Request) {
		route, ok := actions[r.URL.Query().Get("action")]
		if !ok {
			h.NotFound(w, r)
			return
		}

		var fn http.HandlerFunc
		switch r.Method {
		case http.MethodGet:
			fn = route.get
		case http.MethodPost:
			fn = route.post
		}
		if fn == nil {
			h.NotFound(w, r)
			return
		}
		fn(w, r)
	}

	r := chi.NewRouter()
	r.Use(middleware.NewLogging(log).Handle)
	r.Use(cors(allowedOrigin))

	r.Get("/api", dispatch)
	r.Post("/api", dispatch)
	r.Get("/api/captcha", h.CaptchaImage)
	r.NotFound(h.NotFound)

	return r
}

// cors sets the CORS headers and short-circuits preflight requests.
func cors(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
