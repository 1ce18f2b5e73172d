package donation

import "testing"

func seedRepo() *InMemoryRepository {
	return NewInMemoryRepository([]Donation{
		{ID: 1, Name: "Alice Smith", Email: "alice@x.com", Amount: 50},
		{ID: 2, Name: "Bob Jones", Email: "bob@x.com", Amount: 120.5},
		{ID: 3, Name: "Carla Alicea", Email: "carla@x.com", Amount: 50},
	})
}

func TestSearchSubstringCaseInsensitive(t *testing.T) {
	service := NewService(seedRepo())

	got, err := service.Search("ALIC")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected Alice and Carla Alicea, got %+v", got)
	}

	got, err = service.Search("bob@")
	if err != nil {
		t.Fatalf("email search failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected the email match only, got %+v", got)
	}
}

func TestSearchNumericMatchesAmount(t *testing.T) {
	service := NewService(seedRepo())

	got, err := service.Search("120.5")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected the amount match, got %+v", got)
	}

	// amount equality picks up every donation of that exact amount
	got, err = service.Search("50")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both 50.00 donations, got %+v", got)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	service := NewService(seedRepo())
	if _, err := service.Search(""); err != ErrEmptyQuery {
		t.Fatalf("expected ErrEmptyQuery, got %v", err)
	}
}

func TestTotalSumsAmounts(t *testing.T) {
	service := NewService(seedRepo())
	if total := service.Total(); total != 220.5 {
		t.Fatalf("expected total 220.5, got %v", total)
	}
}

func TestCreateValidatesAndStamps(t *testing.T) {
	service := NewService(NewInMemoryRepository(nil))

	created, err := service.Create(Donation{Name: "Dana", Email: "dana@x.com", Amount: 25})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CreatedAt == "" {
		t.Fatalf("createdAt not stamped")
	}

	if _, err := service.Create(Donation{Email: "dana@x.com"}); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if _, err := service.Create(Donation{Name: "Dana"}); err == nil {
		t.Fatalf("expected error for missing email")
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	service := NewService(seedRepo())

	amount := 75.0
	updated, err := service.Update(1, Update{Amount: &amount})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Amount != 75 {
		t.Fatalf("amount not applied: %+v", updated)
	}
	if updated.Name != "Alice Smith" || updated.Email != "alice@x.com" {
		t.Fatalf("untouched fields must survive: %+v", updated)
	}

	if _, err := service.Update(42, Update{Amount: &amount}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
