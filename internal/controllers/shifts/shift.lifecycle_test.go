package shiftController

import (
	"context"
	"testing"

	"modreport/internal/logger"
	. "modreport/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeShiftRepo struct {
	shifts       map[uuid.UUID]*Shift
	createCalls  int
	updateCalls  []map[string]any
	cascadeCalls int
}

func newFakeShiftRepo(shifts ...*Shift) *fakeShiftRepo {
	repo := &fakeShiftRepo{shifts: make(map[uuid.UUID]*Shift)}
	for _, shift := range shifts {
		repo.shifts[shift.ID] = shift
	}
	return repo
}

func (r *fakeShiftRepo) GetByID(_ context.Context, id uuid.UUID) (*Shift, error) {
	if shift, ok := r.shifts[id]; ok {
		return shift, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShiftRepo) GetDetail(ctx context.Context, id uuid.UUID) (*Shift, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeShiftRepo) FindOpenByMod(_ context.Context, modID uuid.UUID) (*Shift, error) {
	for _, shift := range r.shifts {
		if shift.ModID == modID && shift.IsOpen() {
			return shift, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeShiftRepo) Create(_ context.Context, shift *Shift) error {
	r.createCalls++
	if shift.ID == uuid.Nil {
		shift.ID = uuid.Must(uuid.NewV7())
	}
	r.shifts[shift.ID] = shift
	return nil
}

func (r *fakeShiftRepo) Updates(_ context.Context, id uuid.UUID, updates map[string]any) error {
	r.updateCalls = append(r.updateCalls, updates)
	if shift, ok := r.shifts[id]; ok {
		if status, ok := updates["status"].(string); ok {
			shift.Status = status
		}
	}
	return nil
}

func (r *fakeShiftRepo) ListClosed(context.Context) ([]Shift, error) {
	var closed []Shift
	for _, shift := range r.shifts {
		if shift.IsClosed() {
			closed = append(closed, *shift)
		}
	}
	return closed, nil
}

func (r *fakeShiftRepo) ReplaceEditors(_ context.Context, shift *Shift, editors []User) error {
	shift.Editors = editors
	return nil
}

func (r *fakeShiftRepo) DeleteCascade(_ context.Context, _ *gorm.DB, shift *Shift) error {
	r.cascadeCalls++
	delete(r.shifts, shift.ID)
	return nil
}

type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) Execute(
	ctx context.Context,
	fn func(context.Context, *gorm.DB) error,
) error {
	t.calls++
	return fn(ctx, nil)
}

func newTestShiftController(repo *fakeShiftRepo) (*ShiftController, *fakeTransactor) {
	transactor := &fakeTransactor{}
	return &ShiftController{
		shiftRepo:          repo,
		transactionService: transactor,
		log:                logger.New("shiftController"),
	}, transactor
}

func testMod() *User {
	return &User{BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())}}
}

func TestCreateReturnsExistingOpenShift(t *testing.T) {
	mod := testMod()
	open := &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		ModID:         mod.ID,
		Status:        ShiftStatusOpen,
	}
	repo := newFakeShiftRepo(open)
	controller, _ := newTestShiftController(repo)

	shift, existing, err := controller.Create(context.Background(), mod, &CreateShiftRequest{
		Date:     "2025-06-14",
		Schedule: "PM",
	})
	require.NoError(t, err)

	assert.True(t, existing)
	assert.Equal(t, open.ID, shift.ID)
	assert.Zero(t, repo.createCalls)
}

func TestCreateOpensShiftWithStaffing(t *testing.T) {
	mod := testMod()
	repo := newFakeShiftRepo()
	controller, _ := newTestShiftController(repo)

	shift, existing, err := controller.Create(context.Background(), mod, &CreateShiftRequest{
		Date:         "2025-06-14",
		Schedule:     "AM",
		Occupancy:    "88",
		Housekeeping: "Lopez x4",
		Engineering:  "Kim",
	})
	require.NoError(t, err)

	assert.False(t, existing)
	assert.Equal(t, 1, repo.createCalls)
	assert.Equal(t, ShiftStatusOpen, shift.Status)
	require.NotNil(t, shift.Occupancy)
	assert.Equal(t, 88, *shift.Occupancy)
	assert.Equal(t, "Lopez x4", shift.Housekeeping)
	assert.Equal(t, "Kim", shift.Engineering)
}

func TestCloseMarksShiftClosed(t *testing.T) {
	mod := testMod()
	open := &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		ModID:         mod.ID,
		Status:        ShiftStatusOpen,
	}
	repo := newFakeShiftRepo(open)
	controller, _ := newTestShiftController(repo)

	closed, err := controller.Close(context.Background(), mod, open.ID, map[string]string{
		"nps_score": "71",
		"schedule":  "PM",
	})
	require.NoError(t, err)

	assert.Equal(t, ShiftStatusClosed, closed.Status)
	require.Len(t, repo.updateCalls, 1)
	assert.Equal(t, ShiftStatusClosed, repo.updateCalls[0]["status"])
	assert.Equal(t, 71, repo.updateCalls[0]["nps_score"])
	assert.NotContains(t, repo.updateCalls[0], "schedule")
}

func TestCloseRejectsClosedShift(t *testing.T) {
	mod := testMod()
	closed := &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		ModID:         mod.ID,
		Status:        ShiftStatusClosed,
	}
	repo := newFakeShiftRepo(closed)
	controller, _ := newTestShiftController(repo)

	_, err := controller.Close(context.Background(), mod, closed.ID, map[string]string{
		"shift_notes": "second closing",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.updateCalls)
}

func TestSaveProgressRejectsClosedShift(t *testing.T) {
	mod := testMod()
	closed := &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		ModID:         mod.ID,
		Status:        ShiftStatusClosed,
	}
	repo := newFakeShiftRepo(closed)
	controller, _ := newTestShiftController(repo)

	_, err := controller.SaveProgress(context.Background(), mod, closed.ID, map[string]string{
		"housekeeping": "late edit",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.updateCalls)
}

func TestDeleteCascadesInsideTransaction(t *testing.T) {
	mod := testMod()
	shift := &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		ModID:         mod.ID,
		Status:        ShiftStatusClosed,
	}
	repo := newFakeShiftRepo(shift)
	controller, transactor := newTestShiftController(repo)

	require.NoError(t, controller.Delete(context.Background(), mod, shift.ID))

	assert.Equal(t, 1, transactor.calls)
	assert.Equal(t, 1, repo.cascadeCalls)

	_, err := controller.Get(context.Background(), mod, shift.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRequiresOwnerOrAdmin(t *testing.T) {
	mod := testMod()
	shift := &Shift{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.Must(uuid.NewV7())},
		ModID:         mod.ID,
		Status:        ShiftStatusOpen,
	}
	repo := newFakeShiftRepo(shift)
	controller, transactor := newTestShiftController(repo)

	err := controller.Delete(context.Background(), testMod(), shift.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, transactor.calls)
	assert.Zero(t, repo.cascadeCalls)
}
