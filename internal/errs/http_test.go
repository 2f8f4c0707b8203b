package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Too Many Requests"); got != "TOO_MANY_REQUESTS" {
		t.Fatalf("got %q", got)
	}
}

func TestProductNotFoundMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("get product 7: %w", NewProductNotFoundError())

	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected wrapped error to match ErrProductNotFound")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError in chain")
	}
	if httpErr.Status != http.StatusNotFound || httpErr.Message != MessageProductNotFound {
		t.Fatalf("unexpected error: %+v", httpErr)
	}
}

func TestIsComparesCodes(t *testing.T) {
	if errors.Is(NewInternalServerError(), ErrProductNotFound) {
		t.Fatalf("500 must not match the not-found sentinel")
	}
	if !errors.Is(NewInternalServerError(), &HTTPError{}) {
		t.Fatalf("empty code target should match any HTTPError")
	}
}

func TestNotFoundBodyKeepsErrorKey(t *testing.T) {
	body, err := json.Marshal(NewProductNotFoundError())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["error"] != MessageProductNotFound {
		t.Fatalf("expected error key with message, got %s", body)
	}
	if decoded["code"] != CodeProductNotFound {
		t.Fatalf("expected code %s, got %s", CodeProductNotFound, body)
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewBadRequestError("base", false, nil, []FieldError{{Field: "nombre", Error: "is required"}})
	changed := base.WithMessage("changed")

	if base.Message != "base" {
		t.Fatalf("original mutated")
	}
	if changed.Message != "changed" || changed.Code != base.Code || len(changed.Errors) != 1 {
		t.Fatalf("unexpected copy: %+v", changed)
	}
}
