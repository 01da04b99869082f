package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

func health(w http.ResponseWriter, req *http.Request) {
	w.WriteHeader(200)
	w.Write([]byte("All Good"))
}

// router builds the full route table. Split from InitServer so tests
// can drive the routes without a listening socket.
func (s *Serve) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", health).Methods("GET")
	r.Handle("/my-license", addCorsHeaders(http.HandlerFunc(s.handleMyLicense))).Methods("GET", "OPTIONS")

	// Admin console routes, capability gated.
	adminR := r.PathPrefix("/admin").Subrouter()
	adminR.Use(adminOnly(s.identity))
	adminR.HandleFunc("", s.handleAdminPage).Methods("GET")
	adminR.HandleFunc("", s.handleAdminPost).Methods("POST")
	adminR.HandleFunc("/sample.csv", handleSampleCSV).Methods("GET")

	return r
}

// InitServer exposes the Serve instance based on the port parameter.
func (s *Serve) InitServer(port int) {
	r := s.router()

	listenAddr = fmt.Sprintf("%s:%d", listenAddr, port)
	log.Info().Msgf("Web server now listening on %s", listenAddr)
	log.Fatal().Msg(http.ListenAndServe(listenAddr, r).Error())
}
