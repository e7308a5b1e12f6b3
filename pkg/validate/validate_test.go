package validate_test

import (
	"testing"

	"github.com/wazihas/boutique/pkg/validate"
)

type registerInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Mobile    string `json:"mobile"    validate:"required,min=6"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Mobile:    "01711223344",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	for _, field := range []string{"firstName", "lastName", "email", "mobile"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestRequiredRejectsWhitespace(t *testing.T) {
	type in struct {
		Title string `json:"title" validate:"required"`
	}
	if errs := validate.Struct(in{Title: "   "}); !validate.HasErrors(errs) {
		t.Error("expected whitespace-only value to fail required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericRule(t *testing.T) {
	type in struct {
		Price string `json:"price" validate:"required,numeric"`
	}
	if errs := validate.Struct(in{Price: "abc"}); !validate.HasErrors(errs) {
		t.Error("expected non-numeric price to fail")
	}
	if errs := validate.Struct(in{Price: "1299.50"}); validate.HasErrors(errs) {
		t.Errorf("expected numeric price to pass, got: %v", errs)
	}
}

func TestJSONRule(t *testing.T) {
	type in struct {
		Size string `json:"size" validate:"required,json"`
	}
	if errs := validate.Struct(in{Size: `["S","M","L"]`}); validate.HasErrors(errs) {
		t.Errorf("expected JSON array to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Size: `[S,M`}); !validate.HasErrors(errs) {
		t.Error("expected malformed JSON to fail")
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Mobile string `json:"mobile" validate:"required,min=6,max=15"`
	}
	if errs := validate.Struct(in{Mobile: "12345"}); !validate.HasErrors(errs) {
		t.Error("expected short mobile to fail min=6")
	}
	if errs := validate.Struct(in{Mobile: "1234567890123456"}); !validate.HasErrors(errs) {
		t.Error("expected long mobile to fail max=15")
	}
	if errs := validate.Struct(in{Mobile: "01711223344"}); validate.HasErrors(errs) {
		t.Errorf("expected valid mobile to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Role string `json:"role" validate:"required,in=user|admin"`
	}
	if errs := validate.Struct(in{Role: "superadmin"}); !validate.HasErrors(errs) {
		t.Error("expected unknown role to fail")
	}
	if errs := validate.Struct(in{Role: "admin"}); validate.HasErrors(errs) {
		t.Errorf("expected admin to pass: %v", errs)
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	type in struct {
		Photo string `json:"photoURL" validate:"nullable,min=10"`
	}
	if errs := validate.Struct(in{Photo: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Photo: "short"}); !validate.HasErrors(errs) {
		t.Error("expected present nullable field to still hit min=10")
	}
}

func TestErrorKeysUseJSONNames(t *testing.T) {
	errs := validate.Struct(registerInput{LastName: "Lovelace"})
	if _, ok := errs["FirstName"]; ok {
		t.Error("expected json tag name, not Go field name")
	}
	if _, ok := errs["firstName"]; !ok {
		t.Errorf("expected firstName key, got: %v", errs)
	}
}
