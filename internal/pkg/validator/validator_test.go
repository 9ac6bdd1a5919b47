package validator

import (
	"encoding/json"
	"testing"

	"vetclinic-api/internal/pkg/patch"
)

type createOwner struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Age      int    `json:"age" validate:"gte=0,lte=50"`
}

type updatePet struct {
	Name patch.Field[string] `json:"name" validate:"omitempty,max=5"`
	Age  patch.Field[int]    `json:"age" validate:"omitempty,gte=0,lte=50"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(createOwner{Email: "a@b.c"})
	if err == nil || err.Error() != "fullName is required" {
		t.Fatalf("expected fullName is required, got %v", err)
	}

	err = Struct(createOwner{FullName: "Ann", Email: "nope"})
	if err == nil || err.Error() != "email must be a valid email address" {
		t.Fatalf("expected email error, got %v", err)
	}

	err = Struct(createOwner{FullName: "Ann", Email: "a@b.c", Age: 60})
	if err == nil || err.Error() != "age must be less than or equal to 50" {
		t.Fatalf("expected age error, got %v", err)
	}

	if err := Struct(createOwner{FullName: "Ann", Email: "a@b.c", Age: 3}); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestStruct_PatchFields(t *testing.T) {
	var p updatePet
	if err := json.Unmarshal([]byte(`{"name":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := Struct(p); err != nil {
		t.Fatalf("null and absent fields must pass, got %v", err)
	}

	p = updatePet{Name: patch.Set("Maximilian")}
	if err := Struct(p); err == nil || err.Error() != "name must be at most 5 characters" {
		t.Fatalf("expected name length error, got %v", err)
	}

	p = updatePet{Age: patch.Set(99)}
	if err := Struct(p); err == nil {
		t.Fatalf("expected age range error")
	}
}

type updateOwner struct {
	Email patch.Field[string] `json:"email" validate:"omitnil,email"`
}

func TestStruct_PresentEmptyPatchValueIsValidated(t *testing.T) {
	for body, wantErr := range map[string]bool{
		`{}`:                  false,
		`{"email":null}`:      false,
		`{"email":"a@b.com"}`: false,
		`{"email":""}`:        true,
		`{"email":"nope"}`:    true,
	} {
		var u updateOwner
		if err := json.Unmarshal([]byte(body), &u); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if err := Struct(u); (err != nil) != wantErr {
			t.Fatalf("%s: wantErr=%v, got %v", body, wantErr, err)
		}
	}
}
