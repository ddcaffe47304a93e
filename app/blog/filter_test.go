package blog

import (
	"slices"
	"testing"
)

func TestFilterByAuthor_MatchingAuthor(t *testing.T) {
	publications := samplePublications()

	result := FilterByAuthor(publications, intPtr(1))

	if len(result) != 2 {
		t.Fatalf("Expected 2 publications, got %d", len(result))
	}
	if result[0].Date != "17/01/2018" || result[1].Date != "12/04/2018" {
		t.Errorf("Expected dates [17/01/2018 12/04/2018], got [%s %s]", result[0].Date, result[1].Date)
	}
	for _, publication := range result {
		if publication.AuthorID != 1 {
			t.Errorf("Expected only author 1, got author %d", publication.AuthorID)
		}
	}
}

func TestFilterByAuthor_NilCopiesAll(t *testing.T) {
	publications := samplePublications()

	result := FilterByAuthor(publications, nil)

	if !slices.Equal(result, publications) {
		t.Errorf("Expected an element-wise copy, got %v", titles(result))
	}
	if &result[0] == &publications[0] {
		t.Error("Result should not share its backing array with the input")
	}

	result[0].Title = "changed"
	if publications[0].Title == "changed" {
		t.Error("Mutating the result leaked into the input")
	}
}

func TestFilterByAuthor_NoMatch(t *testing.T) {
	result := FilterByAuthor(samplePublications(), intPtr(99))

	if result == nil {
		t.Error("Expected an empty slice, got nil")
	}
	if len(result) != 0 {
		t.Errorf("Expected no publications, got %d", len(result))
	}
}

func TestFilterByAuthor_EmptyInput(t *testing.T) {
	if result := FilterByAuthor(nil, nil); result == nil || len(result) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", result)
	}
	if result := FilterByAuthor([]Publication{}, intPtr(1)); result == nil || len(result) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", result)
	}
}

func TestFilterByAuthor_DoesNotMutateInput(t *testing.T) {
	publications := yearOfPublications()
	original := slices.Clone(publications)

	FilterByAuthor(publications, intPtr(2))
	FilterByAuthor(publications, nil)

	if !slices.Equal(publications, original) {
		t.Errorf("Input was modified: %v", titles(publications))
	}
}

func TestFilterByAuthor_EveryAuthorPartitionsList(t *testing.T) {
	publications := yearOfPublications()

	total := 0
	for _, id := range []int{1, 2, 3} {
		result := FilterByAuthor(publications, intPtr(id))

		var expected []Publication
		for _, publication := range publications {
			if publication.AuthorID == id {
				expected = append(expected, publication)
			}
		}
		if !slices.Equal(result, expected) {
			t.Errorf("Author %d: expected %v, got %v", id, titles(expected), titles(result))
		}
		total += len(result)
	}

	if total != len(publications) {
		t.Errorf("Expected filtered lists to cover %d publications, got %d", len(publications), total)
	}
}

func TestFilterByAuthor_NilIsIdempotent(t *testing.T) {
	publications := yearOfPublications()

	once := FilterByAuthor(publications, nil)
	twice := FilterByAuthor(once, nil)

	if !slices.Equal(once, twice) {
		t.Errorf("Expected %v, got %v", titles(once), titles(twice))
	}
}
