package fleetbackend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/logger"
	"github.com/manyinyire/fleetbackend-sub008/pkg/rbac"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenant"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenantdb"
)

// HandlerFunc is the application handler signature. Handlers return a
// Response to render or an error for the composer to translate; they never
// write error bodies themselves.
type HandlerFunc func(ctx *Context) (Response, error)

// PrincipalResolver recovers the principal behind a request's credential.
// *auth.Resolver satisfies it.
type PrincipalResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*auth.Principal, error)
}

// HandleFactory mints tenant-scoped data handles. *tenantdb.Factory
// satisfies it.
type HandleFactory interface {
	Scoped(ctx context.Context, tenantID uuid.UUID) (*tenantdb.Scoped, error)
}

// Deps are the shared services every wrapped route uses. Tenants and Authz
// are optional: a nil Tenants skips the tenant-active check, a nil Authz
// fails any RequirePermission guard.
type Deps struct {
	Resolver PrincipalResolver
	DB       HandleFactory
	Tenants  tenant.Provider
	Authz    rbac.Authorizer
	Log      *slog.Logger
}

func (d *Deps) logger() *slog.Logger {
	if d.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Log
}

// Wrap composes a guard and a handler into an http.HandlerFunc.
//
// Per request it resolves the principal, runs the guard, binds a
// tenant-scoped transaction when the guard demands one, invokes the handler,
// and commits before rendering. Failures at any stage are translated into
// JSON error responses; exactly one audit line is logged per request.
func Wrap(d *Deps, g Guard, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := d.logger()
		route := r.Method + " " + r.URL.Path

		principal, err := d.Resolver.Resolve(ctx, r)
		if err != nil {
			log.ErrorContext(ctx, "request denied",
				logger.Outcome("error"), logger.Route(route), logger.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if principal != nil {
			ctx = auth.WithPrincipal(ctx, principal)
		}

		audit := func(outcome string, err error) {
			attrs := []any{
				logger.Outcome(outcome),
				logger.Route(route),
				slog.String("guard", g.name),
			}
			if principal != nil {
				attrs = append(attrs, logger.PrincipalID(principal.ID.String()))
				if principal.TenantID != nil {
					attrs = append(attrs, logger.TenantID(principal.TenantID.String()))
				}
			}
			if err != nil {
				attrs = append(attrs, logger.Error(err))
				log.WarnContext(ctx, "request denied", attrs...)
				return
			}
			log.InfoContext(ctx, "request allowed", attrs...)
		}

		if err := g.check(d, principal); err != nil {
			status, msg := translate(err)
			audit(outcomeFor(status), err)
			writeError(w, status, msg)
			return
		}

		var (
			db       *tenantdb.Scoped
			tenantID uuid.UUID
		)
		if g.bindTenant {
			// The guard already verified membership; re-deriving keeps the
			// tenant id and the admitted principal impossible to disagree.
			_, tenantID, err = auth.RequireTenant(principal)
			if err != nil {
				status, msg := translate(err)
				audit(outcomeFor(status), err)
				writeError(w, status, msg)
				return
			}

			if err := checkTenantActive(ctx, d, tenantID); err != nil {
				status, msg := translate(err)
				audit(outcomeFor(status), err)
				writeError(w, status, msg)
				return
			}

			db, err = d.DB.Scoped(ctx, tenantID)
			if err != nil {
				audit("error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			defer db.Rollback(ctx)

			ctx = tenant.WithTenantID(ctx, tenantID)
		}

		c := &Context{
			Context:   ctx,
			principal: principal,
			tenantID:  tenantID,
			db:        db,
			r:         r.WithContext(ctx),
			w:         w,
		}

		resp, err := h(c)
		if err != nil {
			status, msg := translate(err)
			audit(outcomeFor(status), err)
			writeError(w, status, msg)
			return
		}

		if db != nil {
			if err := db.Commit(ctx); err != nil {
				audit("error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		audit("allowed", nil)

		if resp == nil {
			resp = NoContent()
		}
		if err := resp.Render(w, c.r); err != nil {
			log.ErrorContext(ctx, "response render failed",
				logger.Route(route), logger.Error(err))
		}
	}
}

// checkTenantActive refuses requests for suspended or vanished tenants
// before any transaction is opened. Skipped when no provider is wired.
func checkTenantActive(ctx context.Context, d *Deps, tenantID uuid.UUID) error {
	if d.Tenants == nil {
		return nil
	}

	t, err := d.Tenants.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if !t.Active {
		return tenant.ErrTenantInactive
	}
	return nil
}

func outcomeFor(status int) string {
	if status >= http.StatusInternalServerError {
		return "error"
	}
	return "denied"
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
