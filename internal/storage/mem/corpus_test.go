package mem

import (
	"errors"
	"testing"

	"esportconnect/internal/seed"
	"esportconnect/internal/storage"

	"github.com/google/uuid"
)

func TestCorpus(t *testing.T) {
	t.Parallel()
	corpus := New(seed.Jobs())

	listed := corpus.List()
	if len(listed) != 6 {
		t.Fatalf("len = %d, want 6", len(listed))
	}
	for i, want := range seed.Jobs() {
		if listed[i].ID != want.ID {
			t.Fatalf("corpus order broken at %d", i)
		}
	}

	got, err := corpus.Get(listed[2].ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Company != "FaZe Clan" {
		t.Errorf("Get() company = %q", got.Company)
	}

	if _, err := corpus.Get(uuid.New()); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestCorpusListIsACopy(t *testing.T) {
	t.Parallel()
	corpus := New(seed.Jobs())
	listed := corpus.List()
	listed[0].Title = "mutated"

	fresh, err := corpus.Get(listed[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Title == "mutated" {
		t.Error("List() must hand out a copy")
	}
}
