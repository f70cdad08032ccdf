package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "mailsift/internal/platform/errors"
	"mailsift/internal/platform/net/http/bind"
)

type scanReq struct {
	Name    string `json:"name" validate:"required,min=2,max=64"`
	MaxBody int    `json:"max_body" validate:"omitempty,min=1"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSONHappyPath(t *testing.T) {
	got, err := bind.ParseJSON[scanReq](post(`{"name":"inbox","max_body":100}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Name != "inbox" || got.MaxBody != 100 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONEmptyBodyOnPost(t *testing.T) {
	_, err := bind.ParseJSON[scanReq](post(""))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONEmptyBodyOnGetIsZero(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", strings.NewReader(""))
	got, err := bind.ParseJSON[scanReq](req)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if got.Name != "" {
		t.Fatalf("got %+v, want zero value", got)
	}
}

func TestParseJSONUnknownFieldRejected(t *testing.T) {
	_, err := bind.ParseJSON[scanReq](post(`{"name":"inbox","bogus":true}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONTrailingDataRejected(t *testing.T) {
	_, err := bind.ParseJSON[scanReq](post(`{"name":"inbox"}{"name":"again"}`))
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("err = %v, want json error", err)
	}
}

func TestParseJSONValidationUsesJSONTagNames(t *testing.T) {
	_, err := bind.ParseJSON[scanReq](post(`{"name":"x"}`))
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("message should name the json field, got %q", err.Error())
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	err := bind.Get().Validator.Struct(scanReq{Name: ""})
	field, msg := bind.ValidationFieldAndMessage(err)
	if field != "name" {
		t.Fatalf("field = %q, want name", field)
	}
	if msg == "" {
		t.Fatal("expected a translated message")
	}
}
