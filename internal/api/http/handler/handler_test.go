package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sebdah/goldie/v2"

	httpctx "github.com/dtroode/storefront/internal/api/http/context"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

type saverFunc func(ctx context.Context, w http.ResponseWriter, sess *model.Session) error

func (f saverFunc) Save(ctx context.Context, w http.ResponseWriter, sess *model.Session) error {
	return f(ctx, w, sess)
}

var noopSaver = saverFunc(func(context.Context, http.ResponseWriter, *model.Session) error { return nil })

func newResponder(saver SessionSaver) *Responder {
	return NewResponder(httpctx.NewManager(), saver, testutil.MakeNoopLogger())
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

// newRequest builds a request carrying st as its session and the given
// chi URL parameters.
func newRequest(method, target string, form url.Values, st *model.SessionState, params map[string]string) *http.Request {
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	ctx := r.Context()
	if st != nil {
		ctx = httpctx.NewManager().SetSessionToContext(ctx, &model.Session{State: st})
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	return r.WithContext(ctx)
}

func signedIn() *model.SessionState {
	return &model.SessionState{AuthenticatedEmail: "alice@example.com"}
}

var errUnexpected = errors.New("unexpected")
