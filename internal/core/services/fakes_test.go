package services

import (
	"context"
	"sort"
	"time"

	"vetclinic-api/internal/adapters/persistence/models"
	"vetclinic-api/internal/config"

	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:            "services-test-secret-0123456789abcdef",
			Issuer:            "VetClinicApi",
			Audience:          "VetClinicApi",
			ExpirationMinutes: 60,
		},
	}
}

func fastHash(pw string) (string, error) {
	return "hashed:" + pw, nil
}

// ------------------------------------------------------------
// users and roles
// ------------------------------------------------------------

type fakeUserRepo struct {
	users   map[uint]*models.User
	roles   map[uint][]string
	roleIDs map[string]uint
	nextID  uint
	writes  int
	// rejectWrites makes writes affect no rows
	rejectWrites bool
	// createErr is returned by CreateWithRole when set
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[uint]*models.User{},
		roles:   map[uint][]string{},
		roleIDs: map[string]uint{"Admin": 1, "Veterinarian": 2, "Receptionist": 3},
		nextID:  1,
	}
}

func (f *fakeUserRepo) add(user models.User, roles ...string) *models.User {
	user.ID = f.nextID
	f.nextID++
	u := user
	f.users[u.ID] = &u
	f.roles[u.ID] = append([]string(nil), roles...)
	return &u
}

func (f *fakeUserRepo) roleName(id uint) string {
	for name, rid := range f.roleIDs {
		if rid == id {
			return name
		}
	}
	return ""
}

func (f *fakeUserRepo) CreateWithRole(ctx context.Context, user *models.User, roleID uint) (bool, error) {
	f.writes++
	if f.createErr != nil {
		return false, f.createErr
	}
	if f.rejectWrites {
		return false, nil
	}
	stored := f.add(*user, f.roleName(roleID))
	user.ID = stored.ID
	return true, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) (bool, error) {
	f.writes++
	if f.rejectWrites {
		return false, nil
	}
	cp := *user
	f.users[user.ID] = &cp
	return true, nil
}

func (f *fakeUserRepo) GetRoles(ctx context.Context, userID uint) ([]string, error) {
	roles := append([]string(nil), f.roles[userID]...)
	sort.Slice(roles, func(i, j int) bool { return f.roleIDs[roles[i]] < f.roleIDs[roles[j]] })
	return roles, nil
}

func (f *fakeUserRepo) IsInRole(ctx context.Context, userID uint, role string) (bool, error) {
	for _, r := range f.roles[userID] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) AddToRole(ctx context.Context, userID uint, role string) error {
	f.writes++
	f.roles[userID] = append(f.roles[userID], role)
	return nil
}

func (f *fakeUserRepo) ListInRole(ctx context.Context, role string) ([]*models.User, error) {
	var out []*models.User
	for id, u := range f.users {
		for _, r := range f.roles[id] {
			if r == role {
				cp := *u
				out = append(out, &cp)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeRoleRepo struct {
	roles map[string]uint
}

func newFakeRoleRepo(names ...string) *fakeRoleRepo {
	r := &fakeRoleRepo{roles: map[string]uint{}}
	for i, n := range names {
		r.roles[n] = uint(i + 1)
	}
	return r
}

func (f *fakeRoleRepo) GetByName(ctx context.Context, name string) (*models.Role, error) {
	id, ok := f.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.Role{ID: id, Name: name}, nil
}

func (f *fakeRoleRepo) Ensure(ctx context.Context, name string) (*models.Role, error) {
	if _, ok := f.roles[name]; !ok {
		f.roles[name] = uint(len(f.roles) + 1)
	}
	return f.GetByName(ctx, name)
}

// ------------------------------------------------------------
// clinic
// ------------------------------------------------------------

type fakeOwnerRepo struct {
	owners map[uint]*models.Owner
	pets   *fakePetRepo
	nextID uint
	writes int
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: map[uint]*models.Owner{}, nextID: 1}
}

func (f *fakeOwnerRepo) Create(ctx context.Context, owner *models.Owner) (bool, error) {
	f.writes++
	owner.ID = f.nextID
	f.nextID++
	cp := *owner
	f.owners[owner.ID] = &cp
	return true, nil
}

func (f *fakeOwnerRepo) GetByID(ctx context.Context, id uint) (*models.Owner, error) {
	o, ok := f.owners[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOwnerRepo) List(ctx context.Context) ([]*models.Owner, error) {
	var out []*models.Owner
	for _, o := range f.owners {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeOwnerRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := f.owners[id]
	return ok, nil
}

func (f *fakeOwnerRepo) CountPets(ctx context.Context, ownerIDs ...uint) (map[uint]int64, error) {
	counts := map[uint]int64{}
	if f.pets == nil {
		return counts, nil
	}
	for _, p := range f.pets.pets {
		counts[p.OwnerID]++
	}
	return counts, nil
}

func (f *fakeOwnerRepo) Update(ctx context.Context, owner *models.Owner) (bool, error) {
	f.writes++
	cp := *owner
	f.owners[owner.ID] = &cp
	return true, nil
}

func (f *fakeOwnerRepo) Delete(ctx context.Context, id uint) (bool, error) {
	f.writes++
	if _, ok := f.owners[id]; !ok {
		return false, nil
	}
	delete(f.owners, id)
	return true, nil
}

type fakePetRepo struct {
	pets   map[uint]*models.Pet
	owners *fakeOwnerRepo
	nextID uint
	writes int
}

func newFakePetRepo(owners *fakeOwnerRepo) *fakePetRepo {
	r := &fakePetRepo{pets: map[uint]*models.Pet{}, owners: owners, nextID: 1}
	owners.pets = r
	return r
}

func (f *fakePetRepo) Create(ctx context.Context, pet *models.Pet) (bool, error) {
	f.writes++
	pet.ID = f.nextID
	f.nextID++
	cp := *pet
	f.pets[pet.ID] = &cp
	return true, nil
}

func (f *fakePetRepo) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	p, ok := f.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePetRepo) GetWithOwner(ctx context.Context, id uint) (*models.Pet, error) {
	pet, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, ok := f.owners.owners[pet.OwnerID]; ok {
		cp := *owner
		pet.Owner = &cp
	}
	return pet, nil
}

func (f *fakePetRepo) GetWithHistory(ctx context.Context, id uint) (*models.Pet, error) {
	return f.GetWithOwner(ctx, id)
}

func (f *fakePetRepo) List(ctx context.Context) ([]*models.Pet, error) {
	var out []*models.Pet
	for id := range f.pets {
		p, _ := f.GetWithOwner(ctx, id)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePetRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := f.pets[id]
	return ok, nil
}

func (f *fakePetRepo) Update(ctx context.Context, pet *models.Pet) (bool, error) {
	f.writes++
	cp := *pet
	cp.Owner = nil
	f.pets[pet.ID] = &cp
	return true, nil
}

func (f *fakePetRepo) Delete(ctx context.Context, id uint) (bool, error) {
	f.writes++
	if _, ok := f.pets[id]; !ok {
		return false, nil
	}
	delete(f.pets, id)
	return true, nil
}

type fakeVisitRepo struct {
	visits map[uint]*models.Visit
	pets   *fakePetRepo
	nextID uint
	writes int
}

func newFakeVisitRepo(pets *fakePetRepo) *fakeVisitRepo {
	return &fakeVisitRepo{visits: map[uint]*models.Visit{}, pets: pets, nextID: 1}
}

func (f *fakeVisitRepo) CreateWithCheckIn(ctx context.Context, visit *models.Visit) (bool, error) {
	f.writes++
	visit.ID = f.nextID
	f.nextID++
	cp := *visit
	f.visits[visit.ID] = &cp
	if pet, ok := f.pets.pets[visit.PetID]; ok {
		checkIn := visit.VisitDate
		pet.LastCheckInDate = &checkIn
	}
	return true, nil
}

func (f *fakeVisitRepo) GetByID(ctx context.Context, id uint) (*models.Visit, error) {
	v, ok := f.visits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVisitRepo) GetWithDetails(ctx context.Context, id uint) (*models.Visit, error) {
	visit, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet, ok := f.pets.pets[visit.PetID]; ok {
		cp := *pet
		visit.Pet = &cp
	}
	return visit, nil
}

func (f *fakeVisitRepo) List(ctx context.Context) ([]*models.Visit, error) {
	var out []*models.Visit
	for id := range f.visits {
		v, _ := f.GetWithDetails(ctx, id)
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeVisitRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := f.visits[id]
	return ok, nil
}

func (f *fakeVisitRepo) Update(ctx context.Context, visit *models.Visit) (bool, error) {
	f.writes++
	cp := *visit
	f.visits[visit.ID] = &cp
	return true, nil
}

func (f *fakeVisitRepo) Delete(ctx context.Context, id uint) (bool, error) {
	f.writes++
	if _, ok := f.visits[id]; !ok {
		return false, nil
	}
	delete(f.visits, id)
	return true, nil
}

type fakeDiagnosisRepo struct {
	items  []*models.Diagnosis
	writes int
}

func (f *fakeDiagnosisRepo) Create(ctx context.Context, d *models.Diagnosis) (bool, error) {
	f.writes++
	d.ID = uint(len(f.items) + 1)
	cp := *d
	f.items = append(f.items, &cp)
	return true, nil
}

func (f *fakeDiagnosisRepo) ListByVisit(ctx context.Context, visitID uint) ([]*models.Diagnosis, error) {
	var out []*models.Diagnosis
	for _, d := range f.items {
		if d.VisitID == visitID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeTreatmentRepo struct {
	items  []*models.Treatment
	writes int
}

func (f *fakeTreatmentRepo) Create(ctx context.Context, t *models.Treatment) (bool, error) {
	f.writes++
	t.ID = uint(len(f.items) + 1)
	cp := *t
	f.items = append(f.items, &cp)
	return true, nil
}

func (f *fakeTreatmentRepo) ListByVisit(ctx context.Context, visitID uint) ([]*models.Treatment, error) {
	var out []*models.Treatment
	for _, t := range f.items {
		if t.VisitID == visitID {
			out = append(out, t)
		}
	}
	return out, nil
}

type clinicFixture struct {
	owners     *fakeOwnerRepo
	pets       *fakePetRepo
	visits     *fakeVisitRepo
	diagnoses  *fakeDiagnosisRepo
	treatments *fakeTreatmentRepo
	users      *fakeUserRepo
}

func newClinicFixture() *clinicFixture {
	owners := newFakeOwnerRepo()
	pets := newFakePetRepo(owners)
	return &clinicFixture{
		owners:     owners,
		pets:       pets,
		visits:     newFakeVisitRepo(pets),
		diagnoses:  &fakeDiagnosisRepo{},
		treatments: &fakeTreatmentRepo{},
		users:      newFakeUserRepo(),
	}
}
