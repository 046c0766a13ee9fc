package graph

import (
	"context"
	"errors"
	"net/http"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/graph-gophers/graphql-transport-ws/graphqlws"

	"github.com/dmitrijs2005/linkboard/internal/logging"
	"github.com/dmitrijs2005/linkboard/internal/server/auth"
)

const shutdownTimeout = 5 * time.Second

// Server serves the GraphQL API over HTTP. Queries and mutations go through
// the relay handler; subscriptions upgrade to the graphql-transport-ws
// protocol on the same endpoint.
type Server struct {
	address string
	logger  logging.Logger
	handler http.Handler
}

func NewServer(address string, l logging.Logger, resolver *Resolver, verifier *auth.TokenIssuer) (*Server, error) {
	schema, err := graphql.ParseSchema(Schema, resolver)
	if err != nil {
		return nil, err
	}

	gql := graphqlws.NewHandlerFunc(schema, &relay.Handler{Schema: schema})

	mux := http.NewServeMux()
	mux.Handle("/graphql", auth.Middleware(verifier)(gql))
	mux.HandleFunc("/playground", servePlayground)
	mux.HandleFunc("/health", serveHealth)

	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		handler: mux,
	}, nil
}

// Handler exposes the assembled routes; used by tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.handler}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
