package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sboehler/bank/lib/account"
)

var accounts = account.Collection{
	{Number: 101, Name: "Asha", Type: account.Savings, Deposit: 500},
	{Number: 7, Name: "Ravi", Type: account.Current, Deposit: 25000},
	{Number: 42, Name: "Meena", Type: account.Savings, Deposit: 1200},
}

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	bd, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger(): %v", err)
	}
	t.Cleanup(func() {
		if err := bd.Close(); err != nil {
			t.Fatalf("Close(): %v", err)
		}
	})
	return map[string]Backend{
		"memory": NewMemory(),
		"dir":    NewDir(filepath.Join(t.TempDir(), "data")),
		"badger": bd,
	}
}

func TestLoadMissingSlot(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b, DefaultSlot)

			got, err := s.Load()

			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("Load() = %#v, want empty collection", got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b, DefaultSlot)
			if err := s.Save(accounts); err != nil {
				t.Fatalf("Save() returned unexpected error: %v", err)
			}

			got, err := s.Load()

			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			if diff := cmp.Diff(accounts, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSaveEmpty(t *testing.T) {
	b := NewMemory()
	s := New(b, DefaultSlot)

	if err := s.Save(nil); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	data, ok, _ := b.Get(DefaultSlot)
	if !ok || string(data) != "[]" {
		t.Errorf("slot = %q, want []", data)
	}
}

func TestSlotsAreIndependent(t *testing.T) {
	b := NewMemory()
	if err := New(b, "one").Save(accounts); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	got, err := New(b, "two").Load()

	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() = %v, want empty collection", got)
	}
}

func TestDirLayout(t *testing.T) {
	dir := t.TempDir()
	if err := New(NewDir(dir), DefaultSlot).Save(accounts[:1]); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "bankAccounts.json"))

	if err != nil {
		t.Fatalf("os.ReadFile() returned unexpected error: %v", err)
	}
	want := `[{"acno":101,"name":"Asha","type":"S","deposit":500}]`
	if string(got) != want {
		t.Errorf("file = %s, want %s", got, want)
	}
}

func TestLoadRejectsInvalidData(t *testing.T) {
	tests := map[string]string{
		"malformed":    `[{"acno":1,`,
		"unknown type": `[{"acno":1,"name":"A","type":"X","deposit":500}]`,
		"duplicate":    `[{"acno":1,"name":"A","type":"S","deposit":500},{"acno":1,"name":"B","type":"S","deposit":500}]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewMemory()
			if err := b.Put(DefaultSlot, []byte(data)); err != nil {
				t.Fatalf("Put() returned unexpected error: %v", err)
			}

			if _, err := New(b, DefaultSlot).Load(); err == nil {
				t.Errorf("Load() succeeded, want error")
			}
		})
	}
}

func TestBadgerReopen(t *testing.T) {
	dir := t.TempDir()
	bd, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger(): %v", err)
	}
	if err := New(bd, DefaultSlot).Save(accounts); err != nil {
		t.Fatalf("Save() returned unexpected error: %v", err)
	}
	if err := bd.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	if bd, err = OpenBadger(dir); err != nil {
		t.Fatalf("OpenBadger(): %v", err)
	}
	defer bd.Close()

	got, err := New(bd, DefaultSlot).Load()

	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if diff := cmp.Diff(accounts, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}
