package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// SessionSaver persists the request session onto the response.
type SessionSaver interface {
	Save(ctx context.Context, w http.ResponseWriter, sess *model.Session) error
}

type viewResponse struct {
	View   model.View        `json:"view"`
	Data   any               `json:"data,omitempty"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Responder turns operation results into HTTP responses. It saves the
// session before anything is written.
type Responder struct {
	contextManager model.ContextManager
	sessions       SessionSaver
	logger         *logger.Logger
}

// NewResponder creates a new Responder.
func NewResponder(contextManager model.ContextManager, sessions SessionSaver, logger *logger.Logger) *Responder {
	return &Responder{
		contextManager: contextManager,
		sessions:       sessions,
		logger:         logger,
	}
}

// state returns the session state of the request. Requests that bypassed the
// session middleware get a throwaway anonymous state.
func (rs *Responder) state(r *http.Request) *model.SessionState {
	sess, ok := rs.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		return &model.SessionState{}
	}
	return sess.State
}

func (rs *Responder) respond(w http.ResponseWriter, r *http.Request, res model.Result, err error) {
	if sess, ok := rs.contextManager.GetSessionFromContext(r.Context()); ok {
		if saveErr := rs.sessions.Save(r.Context(), w, sess); saveErr != nil {
			rs.logger.Error("Responder: failed to save session",
				"path", r.URL.Path,
				"error", saveErr.Error())
			if err == nil {
				err = model.NewErrInternal(saveErr)
			}
		}
	}

	if err != nil {
		rs.writeError(w, r, err)
		return
	}

	switch res.Kind {
	case model.ResultRedirect:
		http.Redirect(w, r, res.Location, http.StatusFound)
	case model.ResultRender:
		if img, ok := res.Data.(*model.ProductImage); ok {
			rs.writeImage(w, r, img)
			return
		}
		page := viewResponse{View: res.View, Data: res.Data}
		if res.Err != nil {
			page.Error, page.Fields = formError(res.Err)
		}
		rs.writeJSON(w, http.StatusOK, page)
	default:
		rs.writeError(w, r, model.NewErrInternal(nil))
	}
}

func (rs *Responder) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message, fields := handleError(err)
	if status == http.StatusInternalServerError {
		rs.logger.Error("Responder: request failed",
			"path", r.URL.Path,
			"error", err.Error())
	}

	rs.writeJSON(w, status, viewResponse{View: model.ViewError, Error: message, Fields: fields})
}

func (rs *Responder) writeJSON(w http.ResponseWriter, status int, page viewResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(page); err != nil {
		rs.logger.Error("Responder: failed to encode view",
			"view", string(page.View),
			"error", err.Error())
	}
}

func (rs *Responder) writeImage(w http.ResponseWriter, r *http.Request, img *model.ProductImage) {
	defer img.Body.Close()

	contentType := img.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, img.Body); err != nil {
		rs.logger.Error("Responder: failed to stream image",
			"path", r.URL.Path,
			"product_id", img.ProductID,
			"error", err.Error())
	}
}

// parseForm parses the request body, reporting a malformed body as a
// validation error.
func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return model.NewErrValidation(map[string]string{"form": "malformed form body"})
	}
	return nil
}

// NotFound answers requests for unknown routes.
func (rs *Responder) NotFound(w http.ResponseWriter, r *http.Request) {
	rs.respond(w, r, model.Result{}, model.NewErrNotFound("page", nil))
}

// MethodNotAllowed answers requests with a method the route does not serve.
func (rs *Responder) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	rs.writeJSON(w, http.StatusMethodNotAllowed, viewResponse{View: model.ViewError, Error: "method not allowed"})
}
