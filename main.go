package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "Monolith/internal/auth"
	criteria "Monolith/internal/calc/criteria"
	ddm "Monolith/internal/calc/ddm"
	efm "Monolith/internal/calc/efm"
	geometry "Monolith/internal/calc/geometry"
	autodesign "Monolith/internal/calc/premium/autodesign"
	batch "Monolith/internal/calc/premium/batch"
	importer "Monolith/internal/calc/premium/importer"
	recommend "Monolith/internal/calc/premium/recommend"
	report "Monolith/internal/calc/report"
	project "Monolith/internal/project"
	repo "Monolith/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	store := repo.NewPostgresDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	geometryH := &geometry.Handler{}
	criteriaH := &criteria.Handler{}
	ddmH := &ddm.Handler{}
	efmH := &efm.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autodesignH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}
	projectH := &project.Handler{Repo: store}

	secureApi.HandleFunc("/tools/slab/prepare", geometryH.Prepare).Methods("POST")
	secureApi.HandleFunc("/tools/slab/criteria", criteriaH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/slab/ddm", ddmH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/slab/efm", efmH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/slab/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/slab/batch", batchH.Slab).Methods("POST")
	secureApi.HandleFunc("/tools/slab/import", importerH.Slab).Methods("POST")
	secureApi.HandleFunc("/tools/slab/autodesign", autodesignH.Slab).Methods("POST")
	secureApi.HandleFunc("/tools/slab/recommend/drop", recommendH.Drop).Methods("POST")

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
