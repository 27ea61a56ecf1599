package handler

import (
	"net/http"
	"sync"
	"todoapi/config"
	"todoapi/di"
	"todoapi/shared/logger"
	transport "todoapi/transport/http"
)

var (
	app  *transport.HTTP
	once sync.Once
)

// Handler serves every request through one application instance per warm runtime.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()
	})

	app.ServeHTTP(w, r)
}
