package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "mailsift/internal/platform/errors"
	phttp "mailsift/internal/platform/net/http"
)

type echoReq struct {
	Name string `json:"name" validate:"required,min=2"`
}

func TestJSONHandlerBindsAndWraps(t *testing.T) {
	h := phttp.JSONHandler(func(r *stdhttp.Request, in echoReq) (any, error) {
		return map[string]string{"name": in.Name}, nil
	})
	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(`{"name":"ada"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data["name"] != "ada" {
		t.Fatalf("data = %v", env.Data)
	}
}

func TestJSONHandlerRejectsInvalidPayload(t *testing.T) {
	h := phttp.JSONHandler(func(r *stdhttp.Request, in echoReq) (any, error) {
		t.Fatal("handler should not run on invalid payload")
		return nil, nil
	})
	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestJSONHandlerNoBodyPropagatesError(t *testing.T) {
	h := phttp.JSONHandlerNoBody(func(r *stdhttp.Request) (any, error) {
		return nil, perr.NotFoundf("nothing here")
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodGet, "/", nil))

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
