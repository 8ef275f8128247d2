package services

import (
	"errors"
	"testing"
)

func TestSyllabusStoreSaveAndGet(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save("Unit 1 Automata")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(id) != 64 {
		t.Errorf("id = %q, want 64 hex chars", id)
	}

	text, err := store.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if text != "Unit 1 Automata" {
		t.Errorf("text = %q", text)
	}
}

func TestSyllabusStoreSameContentSameID(t *testing.T) {
	store := newTestStore(t)

	a, _ := store.Save("identical")
	b, _ := store.Save("identical")
	if a != b {
		t.Errorf("ids differ for identical content: %q vs %q", a, b)
	}

	c, _ := store.Save("different")
	if c == a {
		t.Error("different content produced the same id")
	}
}

func TestSyllabusStoreResolve(t *testing.T) {
	store := newTestStore(t)

	first, _ := store.Save("first syllabus")
	second, _ := store.Save("second syllabus")

	// Empty id resolves to the most recent upload.
	text, id, err := store.Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != second || text != "second syllabus" {
		t.Errorf("Resolve(\"\") = %q/%q, want latest", id, text)
	}

	// An explicit id still reaches the earlier upload.
	text, id, err = store.Resolve(first)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if id != first || text != "first syllabus" {
		t.Errorf("Resolve(first) = %q/%q", id, text)
	}
}

func TestSyllabusStoreEmpty(t *testing.T) {
	store := newTestStore(t)

	var nf *NotFoundError
	if _, _, err := store.Resolve(""); !errors.As(err, &nf) {
		t.Errorf("err = %v, want NotFoundError", err)
	}
}

func TestSyllabusStoreRejectsPathTricks(t *testing.T) {
	store := newTestStore(t)
	store.Save("content")

	for _, id := range []string{"../etc/passwd", "a/b", `a\b`, "a.b", ""} {
		var nf *NotFoundError
		if _, err := store.Get(id); !errors.As(err, &nf) {
			t.Errorf("Get(%q): err = %v, want NotFoundError", id, err)
		}
	}
}

func TestLocateChapter(t *testing.T) {
	syllabus := "Course outline\nUNIT 1 Automata\nDFA, NFA, regular languages\nUnit 2 Grammars\nCFG and parsing\nUnit 3 Turing machines"

	tests := []struct {
		name    string
		chapter string
		want    string
		wantErr bool
	}{
		{
			name:    "middle chapter ends at next unit",
			chapter: "unit 2",
			want:    "Unit 2 Grammars\nCFG and parsing",
		},
		{
			name:    "case insensitive lookup",
			chapter: "unit 1",
			want:    "UNIT 1 Automata\nDFA, NFA, regular languages",
		},
		{
			name:    "last chapter runs to end",
			chapter: "Turing machines",
			want:    "Turing machines",
		},
		{
			name:    "missing chapter",
			chapter: "Unit 7",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocateChapter(syllabus, tt.chapter)
			if tt.wantErr {
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("err = %v, want NotFoundError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LocateChapter: %v", err)
			}
			if got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}
