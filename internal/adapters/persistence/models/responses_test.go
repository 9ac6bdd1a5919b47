package models

import "testing"

func TestToDetailsResponse_SortsHistoryByID(t *testing.T) {
	owner := &Owner{ID: 5, FullName: "Ann Owner", Pets: []Pet{{ID: 1}, {ID: 8}}}
	pet := &Pet{
		ID:    1,
		Name:  "Rex",
		Owner: owner,
		Visits: []Visit{
			{
				ID:         2,
				Diagnoses:  []Diagnosis{{ID: 9}, {ID: 4}},
				Treatments: []Treatment{{ID: 7}, {ID: 3}},
			},
			{ID: 1},
		},
	}

	details := pet.ToDetailsResponse()

	if len(details.Visits) != 2 || details.Visits[0].ID != 1 || details.Visits[1].ID != 2 {
		t.Fatalf("visits must be ascending by id, got %+v", details.Visits)
	}
	second := details.Visits[1]
	if len(second.Diagnoses) != 2 || second.Diagnoses[0].ID != 4 || second.Diagnoses[1].ID != 9 {
		t.Fatalf("diagnoses must be ascending by id, got %+v", second.Diagnoses)
	}
	if len(second.Treatments) != 2 || second.Treatments[0].ID != 3 || second.Treatments[1].ID != 7 {
		t.Fatalf("treatments must be ascending by id, got %+v", second.Treatments)
	}
	if details.Visits[0].PetName != "Rex" {
		t.Fatalf("expected pet name fallback, got %q", details.Visits[0].PetName)
	}
	if details.Owner == nil || details.Owner.PetCount != 2 || details.OwnerName != "Ann Owner" {
		t.Fatalf("unexpected owner %+v", details.Owner)
	}

	// the stored slices keep their order
	if pet.Visits[0].ID != 2 || pet.Visits[0].Diagnoses[0].ID != 9 {
		t.Fatalf("mapping must not reorder the model")
	}
}

func TestVisitToResponse_VeterinarianFallback(t *testing.T) {
	v := &Visit{ID: 3, VeterinarianID: 42}
	if got := v.ToResponse("Rex").VeterinarianName; got != "42" {
		t.Fatalf("expected veterinarian id fallback, got %q", got)
	}

	v.Veterinarian = &User{ID: 42, FullName: "Dr. Vet"}
	if got := v.ToResponse("Rex").VeterinarianName; got != "Dr. Vet" {
		t.Fatalf("expected veterinarian name, got %q", got)
	}
}
