package account

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  Type
		err   bool
	}{
		{input: "S", want: Savings},
		{input: "s", want: Savings},
		{input: " c ", want: Current},
		{input: "C", want: Current},
		{input: "X", err: true},
		{input: "", err: true},
		{input: "SC", err: true},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got, err := ParseType(test.input)
			if test.err {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseType(%q) returned %v, want ValidationError", test.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) returned unexpected error: %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("ParseType(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestMinimum(t *testing.T) {
	if got := Savings.Minimum(); got != 500 {
		t.Errorf("Savings.Minimum() = %d, want 500", got)
	}
	if got := Current.Minimum(); got != 1000 {
		t.Errorf("Current.Minimum() = %d, want 1000", got)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		desc    string
		account Account
		ok      bool
	}{
		{"savings at minimum", Account{Type: Savings, Deposit: 500}, true},
		{"savings below minimum", Account{Type: Savings, Deposit: 499}, false},
		{"current at minimum", Account{Type: Current, Deposit: 1000}, true},
		{"current below minimum", Account{Type: Current, Deposit: 999}, false},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			err := test.account.Check()
			if test.ok && err != nil {
				t.Fatalf("Check() returned unexpected error: %v", err)
			}
			if !test.ok {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Check() returned %v, want ValidationError", err)
				}
				if verr.Minimum != test.account.Type.Minimum() {
					t.Errorf("ValidationError.Minimum = %d, want %d", verr.Minimum, test.account.Type.Minimum())
				}
			}
		})
	}
}

func TestJSON(t *testing.T) {
	var (
		input = `[{"acno":101,"name":"Asha","type":"S","deposit":500},{"acno":7,"name":"Ravi","type":"C","deposit":2500}]`
		want  = Collection{
			{Number: 101, Name: "Asha", Type: Savings, Deposit: 500},
			{Number: 7, Name: "Ravi", Type: Current, Deposit: 2500},
		}
	)

	var got Collection
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("json.Unmarshal() returned unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json.Unmarshal() mismatch (-want +got):\n%s", diff)
	}
	out, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() returned unexpected error: %v", err)
	}
	if string(out) != input {
		t.Errorf("json.Marshal() = %s, want %s", out, input)
	}
}

func TestJSONRejectsUnknownType(t *testing.T) {
	var c Collection
	err := json.Unmarshal([]byte(`[{"acno":1,"name":"X","type":"Q","deposit":500}]`), &c)
	if err == nil {
		t.Fatalf("json.Unmarshal() succeeded, want error")
	}
}

func TestCollectionIndex(t *testing.T) {
	c := Collection{{Number: 3}, {Number: 1}, {Number: 2}}

	if got := c.Index(1); got != 1 {
		t.Errorf("Index(1) = %d, want 1", got)
	}
	if got := c.Index(4); got != -1 {
		t.Errorf("Index(4) = %d, want -1", got)
	}
}

func TestCollectionValidate(t *testing.T) {
	c := Collection{
		{Number: 1, Name: "A", Type: Savings, Deposit: 500},
		{Number: 2, Name: "", Type: Savings, Deposit: 500},
		{Number: 1, Name: "B", Type: Current, Deposit: 1000},
	}

	errs := multierr.Errors(c.Validate())

	if len(errs) != 2 {
		t.Fatalf("Validate() returned %d errors, want 2: %v", len(errs), errs)
	}
	var dup *DuplicateAccountError
	if !errors.As(errs[1], &dup) || dup.Number != 1 {
		t.Errorf("Validate() error = %v, want duplicate account 1", errs[1])
	}
}
