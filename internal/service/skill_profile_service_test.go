package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/skillswap-backend/internal/models"
	"github.com/ignatzorin/skillswap-backend/internal/pkg/apperror"
)

type mockSkillProfileRepo struct {
	mock.Mock
}

func (m *mockSkillProfileRepo) Upsert(ctx context.Context, entry *models.UserSkill) error {
	args := m.Called(ctx, entry)
	if args.Error(0) == nil {
		entry.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockSkillProfileRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserSkillDetail), args.Error(1)
}

type mockSkillCatalog struct {
	mock.Mock
}

func (m *mockSkillCatalog) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestSkillProfileService_Upsert_Success(t *testing.T) {
	profiles := new(mockSkillProfileRepo)
	catalog := new(mockSkillCatalog)
	svc := NewSkillProfileService(profiles, catalog)
	ctx := context.Background()

	userID := uuid.New()
	skillID := uuid.New()

	catalog.On("Exists", ctx, skillID).Return(true, nil)
	profiles.On("Upsert", ctx, mock.AnythingOfType("*models.UserSkill")).Return(nil)

	entry, err := svc.Upsert(ctx, userID, UpsertInput{
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: models.ProficiencyAdvanced,
		WantToLearn:      false,
	})

	assert.NoError(t, err)
	assert.NotNil(t, entry)
	assert.Equal(t, models.ProficiencyAdvanced, entry.ProficiencyLevel)
	profiles.AssertExpectations(t)
}

func TestSkillProfileService_Upsert_ForeignProfile(t *testing.T) {
	profiles := new(mockSkillProfileRepo)
	catalog := new(mockSkillCatalog)
	svc := NewSkillProfileService(profiles, catalog)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, uuid.New(), UpsertInput{
		UserID:           uuid.New(),
		SkillID:          uuid.New(),
		ProficiencyLevel: models.ProficiencyBeginner,
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsForbidden(err))
	profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSkillProfileService_Upsert_InvalidLevel(t *testing.T) {
	profiles := new(mockSkillProfileRepo)
	catalog := new(mockSkillCatalog)
	svc := NewSkillProfileService(profiles, catalog)
	ctx := context.Background()

	userID := uuid.New()
	for _, level := range []string{"master", "", "Expert"} {
		_, err := svc.Upsert(ctx, userID, UpsertInput{
			UserID:           userID,
			SkillID:          uuid.New(),
			ProficiencyLevel: level,
		})
		assert.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}
	profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSkillProfileService_Upsert_SkillNotInCatalog(t *testing.T) {
	profiles := new(mockSkillProfileRepo)
	catalog := new(mockSkillCatalog)
	svc := NewSkillProfileService(profiles, catalog)
	ctx := context.Background()

	userID := uuid.New()
	skillID := uuid.New()
	catalog.On("Exists", ctx, skillID).Return(false, nil)

	_, err := svc.Upsert(ctx, userID, UpsertInput{
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: models.ProficiencyIntermediate,
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	profiles.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

// ledgerKey — ключ уникальности записи профиля.
type ledgerKey struct {
	userID  uuid.UUID
	skillID uuid.UUID
}

// fakeProfileLedger хранит записи в памяти с той же семантикой, что и
// upsert по (user_id, skill_id): повторная запись вытесняет прежнюю.
type fakeProfileLedger struct {
	entries map[ledgerKey]models.UserSkill
}

func newFakeProfileLedger() *fakeProfileLedger {
	return &fakeProfileLedger{entries: make(map[ledgerKey]models.UserSkill)}
}

func (f *fakeProfileLedger) Upsert(ctx context.Context, entry *models.UserSkill) error {
	key := ledgerKey{userID: entry.UserID, skillID: entry.SkillID}
	if prev, ok := f.entries[key]; ok {
		entry.ID = prev.ID
	} else {
		entry.ID = uuid.New()
	}
	f.entries[key] = *entry
	return nil
}

func (f *fakeProfileLedger) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkillDetail, error) {
	var details []models.UserSkillDetail
	for _, entry := range f.entries {
		if entry.UserID != userID {
			continue
		}
		details = append(details, models.UserSkillDetail{
			SkillID:          entry.SkillID,
			ProficiencyLevel: entry.ProficiencyLevel,
			WantToLearn:      entry.WantToLearn,
		})
	}
	return details, nil
}

func TestSkillProfileService_Upsert_SecondWriteReplacesFirst(t *testing.T) {
	ledger := newFakeProfileLedger()
	catalog := new(mockSkillCatalog)
	svc := NewSkillProfileService(ledger, catalog)
	ctx := context.Background()

	userID := uuid.New()
	skillID := uuid.New()
	catalog.On("Exists", ctx, skillID).Return(true, nil)

	first, err := svc.Upsert(ctx, userID, UpsertInput{
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: models.ProficiencyBeginner,
		WantToLearn:      true,
	})
	assert.NoError(t, err)

	second, err := svc.Upsert(ctx, userID, UpsertInput{
		UserID:           userID,
		SkillID:          skillID,
		ProficiencyLevel: models.ProficiencyAdvanced,
		WantToLearn:      false,
	})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Вторая запись полностью вытесняет первую: навык не может быть
	// одновременно изучаемым и преподаваемым.
	entries, err := svc.ListForUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, models.ProficiencyAdvanced, entries[0].ProficiencyLevel)
	assert.False(t, entries[0].WantToLearn)
}

func TestSkillProfileService_ListForUser(t *testing.T) {
	profiles := new(mockSkillProfileRepo)
	catalog := new(mockSkillCatalog)
	svc := NewSkillProfileService(profiles, catalog)
	ctx := context.Background()

	userID := uuid.New()
	expected := []models.UserSkillDetail{
		{SkillID: uuid.New(), Name: "Guitar", Category: "Music", ProficiencyLevel: models.ProficiencyExpert},
	}
	profiles.On("ListForUser", ctx, userID).Return(expected, nil)

	entries, err := svc.ListForUser(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}
