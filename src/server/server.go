package server

import (
	"encoding/json"
	"net/http"
	"os"

	"license-manager/src/license"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Server listens on localhost:8080 by default.
var listenAddr string = ""

var logger zerolog.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

// ErrorRes is a JSON response containing an error message from the API.
type ErrorRes struct {
	Message string `json:"message"`
}

// LicenseNotifier delivers a freshly added license to its owner. A nil
// notifier disables delivery.
type LicenseNotifier func(email, licenseKey string) error

// Serve is an instance of a License Manager web server.
type Serve struct {
	store    license.Store
	identity IdentityService
	nonces   *NonceStore
	notify   LicenseNotifier
}

// NewServe returns a Serve backed by the given store and collaborators.
func NewServe(store license.Store, identity IdentityService, notify LicenseNotifier) *Serve {
	return &Serve{
		store:    store,
		identity: identity,
		nonces:   NewNonceStore(),
		notify:   notify,
	}
}

func writeError(code int, message string, w http.ResponseWriter) {
	logger.Info().Msg(message)
	w.WriteHeader(code)
	err := ErrorRes{
		Message: message,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(err)
}
