package models

import (
	"sort"
	"strconv"
	"time"
)

// OwnerResponse DTO
type OwnerResponse struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	PetCount  int64     `json:"pet_count"`
}

func (o *Owner) ToResponse(petCount int64) *OwnerResponse {
	return &OwnerResponse{
		ID:        o.ID,
		FullName:  o.FullName,
		Phone:     o.Phone,
		Email:     o.Email,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
		PetCount:  petCount,
	}
}

// PetResponse DTO
type PetResponse struct {
	ID              uint       `json:"id"`
	Name            string     `json:"name"`
	Species         string     `json:"species"`
	Breed           *string    `json:"breed"`
	Age             int        `json:"age"`
	Gender          string     `json:"gender"`
	Weight          float64    `json:"weight"`
	OwnerID         uint       `json:"owner_id"`
	OwnerName       string     `json:"owner_name"`
	LastCheckInDate *time.Time `json:"last_check_in_date"`
	CreatedAt       time.Time  `json:"created_at"`
}

// ToResponse maps a pet; OwnerName is empty unless Owner was preloaded
func (p *Pet) ToResponse() *PetResponse {
	resp := &PetResponse{
		ID:              p.ID,
		Name:            p.Name,
		Species:         p.Species,
		Breed:           p.Breed,
		Age:             p.Age,
		Gender:          p.Gender,
		Weight:          p.Weight,
		OwnerID:         p.OwnerID,
		LastCheckInDate: p.LastCheckInDate,
		CreatedAt:       p.CreatedAt,
	}
	if p.Owner != nil {
		resp.OwnerName = p.Owner.FullName
	}
	return resp
}

// PetDetailsResponse is a pet with its owner and complete visit history
type PetDetailsResponse struct {
	PetResponse
	Owner  *OwnerResponse   `json:"owner"`
	Visits []*VisitResponse `json:"visits"`
}

// ToDetailsResponse expects Owner, Owner.Pets and Visits with their children preloaded.
// Visits come out ascending by id.
func (p *Pet) ToDetailsResponse() *PetDetailsResponse {
	details := &PetDetailsResponse{
		PetResponse: *p.ToResponse(),
		Visits:      make([]*VisitResponse, 0, len(p.Visits)),
	}
	if p.Owner != nil {
		details.Owner = p.Owner.ToResponse(int64(len(p.Owner.Pets)))
	}

	visits := make([]Visit, len(p.Visits))
	copy(visits, p.Visits)
	sort.Slice(visits, func(i, j int) bool { return visits[i].ID < visits[j].ID })

	for i := range visits {
		details.Visits = append(details.Visits, visits[i].ToResponse(p.Name))
	}
	return details
}

// VisitResponse DTO
type VisitResponse struct {
	ID               uint                 `json:"id"`
	PetID            uint                 `json:"pet_id"`
	PetName          string               `json:"pet_name"`
	VeterinarianID   uint                 `json:"veterinarian_id"`
	VeterinarianName string               `json:"veterinarian_name"`
	VisitDate        time.Time            `json:"visit_date"`
	Complaint        *string              `json:"complaint"`
	Notes            *string              `json:"notes"`
	Temperature      *float64             `json:"temperature"`
	Status           *string              `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	Diagnoses        []*DiagnosisResponse `json:"diagnoses"`
	Treatments       []*TreatmentResponse `json:"treatments"`
}

// ToResponse maps a visit with its children ordered by ascending id.
// fallbackPetName is used when Pet was not preloaded, and the
// veterinarian id stands in for a missing veterinarian name.
func (v *Visit) ToResponse(fallbackPetName string) *VisitResponse {
	resp := &VisitResponse{
		ID:               v.ID,
		PetID:            v.PetID,
		PetName:          fallbackPetName,
		VeterinarianID:   v.VeterinarianID,
		VeterinarianName: strconv.FormatUint(uint64(v.VeterinarianID), 10),
		VisitDate:        v.VisitDate,
		Complaint:        v.Complaint,
		Notes:            v.Notes,
		Temperature:      v.Temperature,
		Status:           v.Status,
		CreatedAt:        v.CreatedAt,
		Diagnoses:        DiagnosisResponses(v.Diagnoses),
		Treatments:       TreatmentResponses(v.Treatments),
	}
	if v.Pet != nil {
		resp.PetName = v.Pet.Name
	}
	if v.Veterinarian != nil && v.Veterinarian.FullName != "" {
		resp.VeterinarianName = v.Veterinarian.FullName
	}
	return resp
}

// DiagnosisResponse DTO
type DiagnosisResponse struct {
	ID          uint      `json:"id"`
	VisitID     uint      `json:"visit_id"`
	DiseaseName string    `json:"disease_name"`
	Description *string   `json:"description"`
	Severity    *string   `json:"severity"`
	DiagnosedAt time.Time `json:"diagnosed_at"`
}

func (d *Diagnosis) ToResponse() *DiagnosisResponse {
	return &DiagnosisResponse{
		ID:          d.ID,
		VisitID:     d.VisitID,
		DiseaseName: d.DiseaseName,
		Description: d.Description,
		Severity:    d.Severity,
		DiagnosedAt: d.DiagnosedAt,
	}
}

// DiagnosisResponses maps diagnoses ascending by id
func DiagnosisResponses(items []Diagnosis) []*DiagnosisResponse {
	sorted := make([]Diagnosis, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	out := make([]*DiagnosisResponse, 0, len(sorted))
	for i := range sorted {
		out = append(out, sorted[i].ToResponse())
	}
	return out
}

// TreatmentResponse DTO
type TreatmentResponse struct {
	ID            uint    `json:"id"`
	VisitID       uint    `json:"visit_id"`
	TreatmentName string  `json:"treatment_name"`
	Medication    *string `json:"medication"`
	Dosage        *string `json:"dosage"`
	Instructions  *string `json:"instructions"`
	Cost          float64 `json:"cost"`
}

func (t *Treatment) ToResponse() *TreatmentResponse {
	return &TreatmentResponse{
		ID:            t.ID,
		VisitID:       t.VisitID,
		TreatmentName: t.TreatmentName,
		Medication:    t.Medication,
		Dosage:        t.Dosage,
		Instructions:  t.Instructions,
		Cost:          t.Cost,
	}
}

// TreatmentResponses maps treatments ascending by id
func TreatmentResponses(items []Treatment) []*TreatmentResponse {
	sorted := make([]Treatment, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	out := make([]*TreatmentResponse, 0, len(sorted))
	for i := range sorted {
		out = append(out, sorted[i].ToResponse())
	}
	return out
}
