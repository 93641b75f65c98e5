package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestCollector(t *testing.T) {
	c := New()
	if c.HasErrors() {
		t.Error("fresh collector must have no errors")
	}
	if c.Err() != nil {
		t.Error("fresh collector Err() must be nil")
	}

	c.AddError("user_context", "too long")
	c.AddErrorf("category", "unknown value %q", "x")
	if !c.HasErrors() {
		t.Fatal("collector should report errors")
	}

	err := c.Err()
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("Err() = %T, want *Error", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2", len(verr.Fields))
	}
	if !strings.Contains(err.Error(), "user_context: too long") {
		t.Errorf("message missing field detail: %q", err.Error())
	}
}

func TestStruct(t *testing.T) {
	type request struct {
		UserContext string `json:"user_context" validate:"max=10"`
		Category    string `json:"category" validate:"omitempty,oneof=local_service saas agency"`
	}

	if err := Struct(request{UserContext: "short", Category: "saas"}); err != nil {
		t.Errorf("valid struct should pass, got %v", err)
	}

	err := Struct(request{UserContext: strings.Repeat("x", 11), Category: "nope"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("len(Fields) = %d, want 2: %v", len(verr.Fields), verr.Fields)
	}
	if verr.Fields[0].Field != "user_context" {
		t.Errorf("field name = %q, want json tag name user_context", verr.Fields[0].Field)
	}
}
