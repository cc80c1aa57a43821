package deposit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dropme/rvm-backend/internal/domain/entity"
	errs "github.com/dropme/rvm-backend/internal/domain/error"
	"github.com/dropme/rvm-backend/internal/domain/port/persistence"
	coremocks "github.com/dropme/rvm-backend/mocks/port/core"
	persistencemocks "github.com/dropme/rvm-backend/mocks/port/persistence"
)

// memoryStore is a small transactional fake: writes buffer in a per-call
// transaction and only land on Commit, mirroring the persistence contract
// the coordinator relies on.
type memoryStore struct {
	mu            sync.Mutex
	deposits      []*entity.Deposit
	stats         map[uint64]*entity.UserStatistics
	failIncrement bool
}

func newMemoryStore(userIDs ...uint64) *memoryStore {
	s := &memoryStore{stats: make(map[uint64]*entity.UserStatistics)}
	for _, id := range userIDs {
		s.stats[id] = &entity.UserStatistics{UserID: id}
	}
	return s
}

type statsDelta struct {
	userID      uint64
	weightGrams int64
	points      int64
}

type memoryTx struct {
	store    *memoryStore
	deposits []*entity.Deposit
	deltas   []statsDelta
}

type memoryTxKey struct{}

type memoryUnitOfWork struct {
	store *memoryStore
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, memoryTxKey{}, &memoryTx{store: u.store}), nil
}

func (u *memoryUnitOfWork) Commit(ctx context.Context) error {
	tx := ctx.Value(memoryTxKey{}).(*memoryTx)
	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deposits = append(s.deposits, tx.deposits...)
	for _, d := range tx.deltas {
		st := s.stats[d.userID]
		st.TotalWeightGrams += d.weightGrams
		st.TotalPoints += d.points
		st.DepositCount++
	}
	return nil
}

func (u *memoryUnitOfWork) Rollback(ctx context.Context) error {
	return nil
}

func (u *memoryUnitOfWork) GetDepositRepository(ctx context.Context) persistence.DepositRepository {
	return &memoryDepositRepo{tx: ctx.Value(memoryTxKey{}).(*memoryTx)}
}

func (u *memoryUnitOfWork) GetStatisticsRepository(ctx context.Context) persistence.StatisticsRepository {
	return &memoryStatisticsRepo{tx: ctx.Value(memoryTxKey{}).(*memoryTx)}
}

type memoryDepositRepo struct {
	persistence.DepositRepository
	tx *memoryTx
}

func (r *memoryDepositRepo) Create(ctx context.Context, deposit *entity.Deposit) error {
	r.tx.deposits = append(r.tx.deposits, deposit)
	return nil
}

type memoryStatisticsRepo struct {
	persistence.StatisticsRepository
	tx *memoryTx
}

func (r *memoryStatisticsRepo) Increment(ctx context.Context, userID uint64, weightGrams, pointsEarned int64) error {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failIncrement {
		return errs.ErrMissingUserStatistics
	}
	if _, ok := s.stats[userID]; !ok {
		return errs.ErrMissingUserStatistics
	}
	r.tx.deltas = append(r.tx.deltas, statsDelta{userID: userID, weightGrams: weightGrams, points: pointsEarned})
	return nil
}

func (r *memoryStatisticsRepo) GetByUserID(ctx context.Context, userID uint64) (*entity.UserStatistics, error) {
	s := r.tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stats[userID]
	if !ok {
		return nil, errs.ErrMissingUserStatistics
	}
	view := *st
	for _, d := range r.tx.deltas {
		if d.userID == userID {
			view.TotalWeightGrams += d.weightGrams
			view.TotalPoints += d.points
			view.DepositCount++
		}
	}
	return &view, nil
}

func newStoreBackedCoordinator(store *memoryStore) *Coordinator {
	materialRepo := new(persistencemocks.MockMaterialRepository)
	machineRepo := new(persistencemocks.MockMachineRepository)
	timeProvider := new(coremocks.MockTimeProvider)
	logger := new(coremocks.MockLogger)

	materialRepo.On("GetByName", mock.Anything, "Plastic").Return(plasticMaterial(), nil)
	machineRepo.On("GetByMachineID", mock.Anything, "RVM-001").Return(activeMachine(), nil)
	timeProvider.On("Now").Return(fixedTime).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()

	return NewCoordinator(
		&memoryUnitOfWork{store: store}, materialRepo, machineRepo,
		NewDepositValidator(0), nil,
		timeProvider, logger,
	)
}

func TestRecordDeposit_ConcurrentSubmissionsAccumulate(t *testing.T) {
	const workers = 20

	store := newMemoryStore(42)
	coordinator := newStoreBackedCoordinator(store)

	req := plasticRequest()
	req.WeightKg = "0.5"

	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := coordinator.RecordDeposit(context.Background(), 42, req)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		assert.NoError(t, err)
	}

	stats := store.stats[42]
	assert.Equal(t, int64(workers*500), stats.TotalWeightGrams)
	assert.Equal(t, int64(workers*50), stats.TotalPoints)
	assert.Equal(t, uint64(workers), stats.DepositCount)
	assert.Len(t, store.deposits, workers)

	references := make(map[string]struct{}, workers)
	for _, d := range store.deposits {
		references[d.Reference] = struct{}{}
	}
	assert.Len(t, references, workers)
}

func TestRecordDeposit_IncrementFailureLeavesStoreUntouched(t *testing.T) {
	store := newMemoryStore(42)
	store.failIncrement = true
	coordinator := newStoreBackedCoordinator(store)

	_, err := coordinator.RecordDeposit(context.Background(), 42, plasticRequest())

	assert.ErrorIs(t, err, errs.ErrMissingUserStatistics)
	assert.Empty(t, store.deposits)
	assert.Equal(t, uint64(0), store.stats[42].DepositCount)
}

func TestRecordDeposit_UnknownUserLeavesStoreUntouched(t *testing.T) {
	store := newMemoryStore(42)
	coordinator := newStoreBackedCoordinator(store)

	_, err := coordinator.RecordDeposit(context.Background(), 7, plasticRequest())

	assert.ErrorIs(t, err, errs.ErrMissingUserStatistics)
	assert.Empty(t, store.deposits)
}
