package validate_test

import (
	"reflect"
	"testing"

	"github.com/msomdec/complaint-tracker/internal/validate"
)

func TestRegistration_Valid(t *testing.T) {
	errs := validate.Registration(validate.RegistrationForm{
		Username:        "alice",
		Email:           "alice@x.com",
		Password:        "Secret1!",
		ConfirmPassword: "Secret1!",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestRegistration_EmptyForm(t *testing.T) {
	errs := validate.Registration(validate.RegistrationForm{})
	want := []string{
		"Username is required.",
		"Valid email is required.",
		"Password must be at least 8 characters.",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestRegistration_FieldChecks(t *testing.T) {
	tests := []struct {
		name string
		form validate.RegistrationForm
		want []string
	}{
		{
			name: "bad email shape",
			form: validate.RegistrationForm{Username: "bob", Email: "not-an-email", Password: "Secret1!", ConfirmPassword: "Secret1!"},
			want: []string{"Valid email is required."},
		},
		{
			name: "email without dot",
			form: validate.RegistrationForm{Username: "bob", Email: "bob@localhost", Password: "Secret1!", ConfirmPassword: "Secret1!"},
			want: []string{"Valid email is required."},
		},
		{
			name: "short password",
			form: validate.RegistrationForm{Username: "bob", Email: "bob@x.com", Password: "Ab1!", ConfirmPassword: "Ab1!"},
			want: []string{"Password must be at least 8 characters."},
		},
		{
			name: "missing composition",
			form: validate.RegistrationForm{Username: "bob", Email: "bob@x.com", Password: "alllowercase", ConfirmPassword: "alllowercase"},
			want: []string{"Password must contain an upper-case letter, a lower-case letter, a digit, and one of !@#$%^&*."},
		},
		{
			name: "mismatched confirmation",
			form: validate.RegistrationForm{Username: "bob", Email: "bob@x.com", Password: "Secret1!", ConfirmPassword: "Secret2!"},
			want: []string{"Passwords do not match."},
		},
		{
			name: "errors accumulate in order",
			form: validate.RegistrationForm{Email: "bad", Password: "weak", ConfirmPassword: "other"},
			want: []string{
				"Username is required.",
				"Valid email is required.",
				"Password must be at least 8 characters.",
				"Password must contain an upper-case letter, a lower-case letter, a digit, and one of !@#$%^&*.",
				"Passwords do not match.",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validate.Registration(tc.form)
			if !reflect.DeepEqual(errs, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, errs)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	if errs := validate.Login(validate.LoginForm{Username: "alice", Password: "x"}); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	errs := validate.Login(validate.LoginForm{})
	want := []string{"Username is required.", "Password is required."}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestComplaint_EmptyForm_SixOrderedErrors(t *testing.T) {
	errs := validate.Complaint(validate.ComplaintForm{})
	want := []string{
		"Full Name is required.",
		"College Name is required.",
		"Year is required.",
		"Complaint Type is required.",
		"Subject is required.",
		"Complaint description is required.",
	}
	if !reflect.DeepEqual(errs, want) {
		t.Fatalf("expected %v, got %v", want, errs)
	}
}

func TestComplaint_SingleMissingField(t *testing.T) {
	form := validate.ComplaintForm{
		FullName:      "Alice A",
		CollegeName:   "Example College",
		Year:          "2",
		ComplaintType: "Academic",
		Subject:       "",
		Description:   "The library closes too early.",
	}
	errs := validate.Complaint(form)
	if len(errs) != 1 || errs[0] != "Subject is required." {
		t.Fatalf("expected only the subject error, got %v", errs)
	}
}

func TestComplaint_WhitespaceOnlyIsEmpty(t *testing.T) {
	form := validate.ComplaintForm{
		FullName:      "  ",
		CollegeName:   "Example College",
		Year:          "2",
		ComplaintType: "Academic",
		Subject:       "Library hours",
		Description:   "The library closes too early.",
	}
	errs := validate.Complaint(form)
	if len(errs) != 1 || errs[0] != "Full Name is required." {
		t.Fatalf("expected only the full name error, got %v", errs)
	}
}

func TestAsError(t *testing.T) {
	if err := validate.AsError(nil); err != nil {
		t.Fatalf("expected nil for empty message list, got %v", err)
	}

	err := validate.AsError([]string{"Subject is required."})
	verr, ok := err.(*validate.Error)
	if !ok {
		t.Fatalf("expected *validate.Error, got %T", err)
	}
	if len(verr.Messages) != 1 || verr.Messages[0] != "Subject is required." {
		t.Fatalf("unexpected messages: %v", verr.Messages)
	}
}
