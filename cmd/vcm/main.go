// CLAUDE:SUMMARY Entry point for the VCM HTTP service — chi router, JWT sessions, sqlite-backed CMS and registries.
package main

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/dimilowe/VCMStore-sub005/audit"
	"github.com/dimilowe/VCMStore-sub005/auth"
	"github.com/dimilowe/VCMStore-sub005/cluster"
	"github.com/dimilowe/VCMStore-sub005/cms"
	"github.com/dimilowe/VCMStore-sub005/dbopen"
	"github.com/dimilowe/VCMStore-sub005/engine"
	"github.com/dimilowe/VCMStore-sub005/idgen"
	"github.com/dimilowe/VCMStore-sub005/plans"
	"github.com/dimilowe/VCMStore-sub005/seoreg"
	"github.com/dimilowe/VCMStore-sub005/shield"
)

// sessionTTL bounds both the JWT expiry and the cookie lifetime.
const sessionTTL = 30 * 24 * time.Hour

func main() {
	cfg, err := loadConfig(env("CONFIG_FILE", "vcm.yaml"))
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	secretInput := os.Getenv("SESSION_SECRET")
	if secretInput == "" {
		slog.Error("SESSION_SECRET is required")
		os.Exit(1)
	}
	// Derive 32-byte JWT secret via SHA-256 (satisfies auth.MinSecretLen).
	secretHash := sha256.Sum256([]byte(secretInput))
	jwtSecret := secretHash[:]

	port := cfg.Port

	// Logging.
	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := dbopen.Open(cfg.DBPath, dbopen.WithMkdirAll())
	if err != nil {
		slog.Error("open db", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrateUsers(db); err != nil {
		slog.Error("migrate users", "error", err)
		os.Exit(1)
	}
	if err := seedAdmin(ctx, db, cfg.Admin.Password); err != nil {
		slog.Error("seed admin", "error", err)
		os.Exit(1)
	}

	// Audit logger (writes to the same DB).
	auditLogger := audit.NewSQLiteLogger(db)
	if err := auditLogger.Init(); err != nil {
		slog.Error("audit init", "error", err)
		os.Exit(1)
	}
	defer auditLogger.Close()

	// CMS service (applies its schema).
	cmsSvc, err := cms.New(db, logger)
	if err != nil {
		slog.Error("cms service", "error", err)
		os.Exit(1)
	}

	// URL registry service.
	seoSvc, err := seoreg.New(db, cmsSvc, logger)
	if err != nil {
		slog.Error("seoreg service", "error", err)
		os.Exit(1)
	}

	// Cluster health overview.
	clusterSvc := cluster.NewService(cmsSvc, logger)

	// Blueprint registry from the static catalog.
	registry, err := engine.NewRegistry(engine.Catalog()...)
	if err != nil {
		slog.Error("blueprint registry", "error", err)
		os.Exit(1)
	}
	creator := engine.NewCreator(registry, cmsSvc, logger)

	users := &userService{db: db}

	// Router.
	r := chi.NewRouter()
	for _, mw := range shield.DefaultStack() {
		r.Use(mw)
	}
	r.Use(auth.Middleware(jwtSecret)) // Parse JWT on all routes (soft — doesn't enforce).

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	r.Get("/api/plans", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, plans.All())
	})

	// Public auth endpoints (no session required).
	r.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, 400, err)
			return
		}
		claims, err := users.authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeJSON(w, 401, map[string]string{"error": "invalid credentials"})
			return
		}
		token, err := auth.GenerateToken(jwtSecret, claims, sessionTTL)
		if err != nil {
			writeError(w, 500, err)
			return
		}
		secure := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
		auth.SetTokenCookie(w, token, sessionTTL, secure)
		auditLogger.LogAsync(&audit.Entry{UserID: claims.UserID, Action: "login"})
		writeJSON(w, 200, map[string]string{
			"id": claims.UserID, "name": claims.Username,
			"role": claims.Role, "plan": claims.Plan,
		})
	})

	r.Post("/api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		auth.ClearTokenCookie(w)
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	// All API endpoints below require a valid session.
	r.Group(func(r chi.Router) {
		r.Use(requireSession)

		r.Get("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
			c := auth.GetClaims(r.Context())
			writeJSON(w, 200, map[string]string{
				"id": c.UserID, "name": c.Username,
				"role": c.Role, "plan": c.Plan,
			})
		})

		// Admin: cluster health overview.
		r.Route("/api/admin/clusters", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				overviews, err := clusterSvc.Overview(r.Context())
				if err != nil {
					writeError(w, 500, err)
					return
				}
				writeJSON(w, 200, overviews)
			})
			r.Get("/{clusterID}", func(w http.ResponseWriter, r *http.Request) {
				overview, err := clusterSvc.ClusterOverview(r.Context(), chi.URLParam(r, "clusterID"))
				if err != nil {
					writeError(w, 404, err)
					return
				}
				writeJSON(w, 200, overview)
			})
		})

		// Admin: URL registry.
		r.Route("/api/admin/seo/url-registry", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/enriched", func(w http.ResponseWriter, r *http.Request) {
				rows, summary, err := seoSvc.Enriched(r.Context())
				if err != nil {
					writeError(w, 500, err)
					return
				}
				if rows == nil {
					rows = []seoreg.EnrichedRow{}
				}
				writeJSON(w, 200, map[string]any{"urls": rows, "summary": summary})
			})
			r.Post("/sync", func(w http.ResponseWriter, r *http.Request) {
				n, err := seoSvc.Sync(r.Context())
				if err != nil {
					writeError(w, 500, err)
					return
				}
				writeJSON(w, 200, map[string]any{"status": "synced", "objects": n})
			})
			r.Post("/snapshots", func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Slug     string `json:"slug"`
					LinksIn  int    `json:"linksIn"`
					LinksOut int    `json:"linksOut"`
					Score    int    `json:"score"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					writeError(w, 400, err)
					return
				}
				if req.Slug == "" {
					writeError(w, 400, fmt.Errorf("slug required"))
					return
				}
				if err := seoSvc.RecordSnapshot(r.Context(), req.Slug, req.LinksIn, req.LinksOut, req.Score); err != nil {
					writeError(w, 500, err)
					return
				}
				writeJSON(w, 201, map[string]string{"status": "recorded"})
			})
		})

		// Admin: combinatorial engines.
		r.Route("/api/admin/engines", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
				type blueprintInfo struct {
					ID          string `json:"id"`
					Name        string `json:"name"`
					ProductSize int    `json:"productSize"`
				}
				var list []blueprintInfo
				for _, bp := range registry.List() {
					list = append(list, blueprintInfo{ID: bp.ID, Name: bp.Name, ProductSize: bp.ProductSize()})
				}
				if list == nil {
					list = []blueprintInfo{}
				}
				writeJSON(w, 200, list)
			})
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Action      string `json:"action"`
					BlueprintID string `json:"blueprintId"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					writeError(w, 400, err)
					return
				}
				entry := &audit.Entry{
					UserID:     auth.GetClaims(r.Context()).UserID,
					Action:     "engine_" + req.Action,
					Parameters: fmt.Sprintf(`{"blueprintId":%q}`, req.BlueprintID),
				}
				switch req.Action {
				case "expand":
					if req.BlueprintID == "" {
						writeError(w, 400, fmt.Errorf("blueprintId required for expand"))
						return
					}
					result, err := creator.ExpandBlueprint(r.Context(), req.BlueprintID)
					if err != nil {
						entry.Error = err.Error()
						auditLogger.LogAsync(entry)
						writeError(w, 400, err)
						return
					}
					auditLogger.LogAsync(entry)
					writeJSON(w, 200, result)
				case "expandAll":
					results, err := creator.ExpandAll(r.Context())
					if err != nil {
						entry.Error = err.Error()
						auditLogger.LogAsync(entry)
						writeError(w, 500, err)
						return
					}
					auditLogger.LogAsync(entry)
					writeJSON(w, 200, results)
				default:
					writeError(w, 400, fmt.Errorf("unknown action %q", req.Action))
				}
			})
		})

		// Admin: CMS objects.
		r.Route("/api/admin/cms", func(r chi.Router) {
			r.Use(requireAdmin)

			r.Get("/objects", func(w http.ResponseWriter, r *http.Request) {
				objType := r.URL.Query().Get("type")
				status := r.URL.Query().Get("status")
				limit := queryInt(r, "limit", 200)
				objects, err := cmsSvc.List(r.Context(), objType, status, limit)
				if err != nil {
					writeError(w, 500, err)
					return
				}
				if objects == nil {
					objects = []*cms.Object{}
				}
				writeJSON(w, 200, objects)
			})

			r.Get("/objects/{slug}", func(w http.ResponseWriter, r *http.Request) {
				obj, err := cmsSvc.Get(r.Context(), chi.URLParam(r, "slug"))
				if err != nil {
					writeError(w, 500, err)
					return
				}
				if obj == nil {
					writeError(w, 404, fmt.Errorf("object not found"))
					return
				}
				writeJSON(w, 200, obj)
			})

			r.Post("/objects/{slug}/indexed", func(w http.ResponseWriter, r *http.Request) {
				var req struct {
					Indexed bool `json:"indexed"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					writeError(w, 400, err)
					return
				}
				slug := chi.URLParam(r, "slug")
				if err := cmsSvc.SetIndexed(r.Context(), slug, req.Indexed); err != nil {
					writeError(w, 404, err)
					return
				}
				auditLogger.LogAsync(&audit.Entry{
					UserID:     auth.GetClaims(r.Context()).UserID,
					Action:     "set_indexed",
					Parameters: fmt.Sprintf(`{"slug":%q,"indexed":%t}`, slug, req.Indexed),
				})
				writeJSON(w, 200, map[string]any{"slug": slug, "indexed": req.Indexed})
			})

			r.Post("/bulk-import", func(w http.ResponseWriter, r *http.Request) {
				c := auth.GetClaims(r.Context())
				tier := plans.Tier(c.Plan)
				if !plans.Allows(tier.ID, plans.FeatureBulkImport) {
					writeJSON(w, 403, map[string]string{"error": "bulk import requires a paid plan"})
					return
				}
				var req struct {
					Items []cms.ImportItem `json:"items"`
				}
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					writeError(w, 400, err)
					return
				}
				if len(req.Items) > tier.MaxBulkItems {
					writeError(w, 400, fmt.Errorf("batch of %d exceeds plan limit of %d", len(req.Items), tier.MaxBulkItems))
					return
				}
				report, err := cmsSvc.BulkImport(r.Context(), req.Items)
				if err != nil {
					writeError(w, 500, err)
					return
				}
				auditLogger.LogAsync(&audit.Entry{
					UserID:     c.UserID,
					Action:     "bulk_import",
					Parameters: fmt.Sprintf(`{"items":%d,"created":%d,"updated":%d,"errors":%d}`, len(req.Items), report.CreatedCount, report.UpdatedCount, len(report.Errors)),
				})
				writeJSON(w, 200, report)
			})
		})
	})

	// HTTP server.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
	slog.Info("server stopped")
}

// --- Auth middleware ---

// requireSession returns 401 JSON if no valid JWT claims in context.
// auth.Middleware (applied globally) does the soft parsing.
func requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.GetClaims(r.Context()) == nil {
			writeJSON(w, 401, map[string]string{"error": "not authenticated"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := auth.GetClaims(r.Context())
		if c == nil || c.Role != "admin" {
			writeJSON(w, 403, map[string]string{"error": "admin required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- User DB operations ---

func migrateUsers(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'user',
			plan          TEXT NOT NULL DEFAULT 'free',
			status        TEXT NOT NULL DEFAULT 'active',
			created_at    INTEGER NOT NULL
		);
	`)
	return err
}

func seedAdmin(ctx context.Context, db *sql.DB, password string) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin' AND status = 'active'`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	id := idgen.New()
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, plan, status, created_at) VALUES (?, ?, ?, ?, 'admin', 'agency', 'active', ?)`,
		id, "admin", "admin", string(hash), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	slog.Info("admin user seeded", "email", "admin", "id", id)
	return nil
}

type userService struct {
	db *sql.DB
}

func (s *userService) authenticate(ctx context.Context, email, password string) (*auth.Claims, error) {
	var userID, name, role, plan, hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, role, plan, password_hash FROM users WHERE email = ? AND status = 'active'`, email).
		Scan(&userID, &name, &role, &plan, &hash)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong password")
	}
	return &auth.Claims{
		UserID:   userID,
		Username: name,
		Role:     role,
		Email:    email,
		Plan:     plan,
	}, nil
}

// --- Helpers ---

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
