// Package memory provides an in-process implementation of the persistence ports
// for use case tests. Writes apply immediately; Rollback only releases locks.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/tip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/tip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/tip-processor/internal/domain/port/persistence"
)

type txStateKey struct{}

// txState tracks the creator locks held by one unit of work
type txState struct {
	mu     sync.Mutex
	held   map[uint64]*sync.Mutex
	closed bool
}

func (t *txState) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	for _, l := range t.held {
		l.Unlock()
	}
}

// Store holds creators, transactions and withdrawals in maps
type Store struct {
	mu           sync.Mutex
	creators     map[uint64]*entity.Creator
	creatorLocks map[uint64]*sync.Mutex
	transactions map[uint64]*entity.Transaction
	withdrawals  map[uint64]*entity.Withdrawal
	nextTxID     uint64
	nextPayoutID uint64
	ExecuteCalls int

	// HonorCancellation makes writes and new units of work fail on a done
	// context, the way a database driver aborts a cancelled statement.
	HonorCancellation bool
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		creators:     make(map[uint64]*entity.Creator),
		creatorLocks: make(map[uint64]*sync.Mutex),
		transactions: make(map[uint64]*entity.Transaction),
		withdrawals:  make(map[uint64]*entity.Withdrawal),
	}
}

var _ persistence.UnitOfWork = (*Store)(nil)

func (s *Store) checkContext(ctx context.Context) error {
	if !s.HonorCancellation || ctx.Err() == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errs.ErrStorage, ctx.Err())
}

// AddCreator registers a creator
func (s *Store) AddCreator(id uint64, name, phone string) *entity.Creator {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &entity.Creator{ID: id, Name: name, PhoneNumber: phone, CreatedAt: time.Unix(0, 0).UTC()}
	s.creators[id] = c
	s.creatorLocks[id] = &sync.Mutex{}
	return c
}

// AddTransaction stores tx as-is, assigning an ID when it has none
func (s *Store) AddTransaction(tx *entity.Transaction) *entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == 0 {
		s.nextTxID++
		tx.ID = s.nextTxID
	} else if tx.ID > s.nextTxID {
		s.nextTxID = tx.ID
	}
	s.transactions[tx.ID] = tx.Clone()
	return tx
}

// AddCompletedTip stores a COMPLETED tip of amount for a creator
func (s *Store) AddCompletedTip(creatorID uint64, amount string, createdAt time.Time) *entity.Transaction {
	receipt := fmt.Sprintf("SEED%d", createdAt.UnixNano())
	return s.AddTransaction(&entity.Transaction{
		CreatorID:      creatorID,
		Amount:         decimal.RequireFromString(amount),
		Status:         entity.StatusCompleted,
		GatewayReceipt: &receipt,
		PayerPhone:     "254712345678",
		PayerName:      entity.DefaultPayerName,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	})
}

// Transaction returns a copy of the stored transaction
func (s *Store) Transaction(id uint64) *entity.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx, ok := s.transactions[id]; ok {
		return tx.Clone()
	}
	return nil
}

// Withdrawal returns a copy of the stored withdrawal
func (s *Store) Withdrawal(id uint64) *entity.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.withdrawals[id]; ok {
		return cloneWithdrawal(w)
	}
	return nil
}

// Withdrawals returns copies of every stored withdrawal
func (s *Store) Withdrawals() []*entity.Withdrawal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Withdrawal, 0, len(s.withdrawals))
	for _, w := range s.withdrawals {
		out = append(out, cloneWithdrawal(w))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Begin starts a unit of work
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	return context.WithValue(ctx, txStateKey{}, &txState{held: make(map[uint64]*sync.Mutex)}), nil
}

// Commit releases the locks taken by the unit of work
func (s *Store) Commit(ctx context.Context) error {
	state, ok := ctx.Value(txStateKey{}).(*txState)
	if !ok {
		return fmt.Errorf("%w: no active transaction", errs.ErrStorage)
	}
	state.release()
	return nil
}

// Rollback releases the locks taken by the unit of work
func (s *Store) Rollback(ctx context.Context) error {
	return s.Commit(ctx)
}

// Execute runs fn inside a unit of work
func (s *Store) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	s.ExecuteCalls++
	s.mu.Unlock()

	if err := s.checkContext(ctx); err != nil {
		return err
	}

	txCtx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = s.Rollback(txCtx) }()

	if err := fn(txCtx); err != nil {
		return err
	}
	return s.Commit(txCtx)
}

func (s *Store) GetCreatorRepository(context.Context) persistence.CreatorRepository {
	return &creatorRepository{s: s}
}

func (s *Store) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return &transactionRepository{s: s}
}

func (s *Store) GetWithdrawalRepository(context.Context) persistence.WithdrawalRepository {
	return &withdrawalRepository{s: s}
}

type creatorRepository struct{ s *Store }

func (r *creatorRepository) GetByID(_ context.Context, id uint64) (*entity.Creator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.creators[id]
	if !ok {
		return nil, errs.ErrCreatorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *creatorRepository) LockByID(ctx context.Context, id uint64) (*entity.Creator, error) {
	r.s.mu.Lock()
	lock, ok := r.s.creatorLocks[id]
	r.s.mu.Unlock()
	if !ok {
		return nil, errs.ErrCreatorNotFound
	}

	state, inTx := ctx.Value(txStateKey{}).(*txState)
	if !inTx {
		return nil, fmt.Errorf("%w: row lock outside a transaction", errs.ErrStorage)
	}

	state.mu.Lock()
	_, already := state.held[id]
	state.mu.Unlock()
	if !already {
		lock.Lock()
		state.mu.Lock()
		state.held[id] = lock
		state.mu.Unlock()
	}

	return r.GetByID(ctx, id)
}

func (r *creatorRepository) Create(_ context.Context, c *entity.Creator) error {
	r.s.AddCreator(c.ID, c.Name, c.PhoneNumber)
	return nil
}

type transactionRepository struct{ s *Store }

func (r *transactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	if err := r.s.checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.creators[tx.CreatorID]; !ok {
		return errs.ErrCreatorNotFound
	}
	r.s.nextTxID++
	tx.ID = r.s.nextTxID
	r.s.transactions[tx.ID] = tx.Clone()
	return nil
}

func (r *transactionRepository) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	return tx.Clone(), nil
}

func (r *transactionRepository) GetByRequestID(_ context.Context, requestID string) (*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, tx := range r.s.transactions {
		if tx.RequestID() == requestID {
			return tx.Clone(), nil
		}
	}
	return nil, errs.ErrTransactionNotFound
}

func (r *transactionRepository) SetRequestID(ctx context.Context, tx *entity.Transaction) (bool, error) {
	if err := r.s.checkContext(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.transactions[tx.ID]
	if !ok {
		return false, errs.ErrTransactionNotFound
	}
	if stored.GatewayRequestID != nil {
		return false, nil
	}
	for _, other := range r.s.transactions {
		if other.ID != tx.ID && other.RequestID() == tx.RequestID() {
			return false, errs.ErrCorrelationConflict
		}
	}
	id := tx.RequestID()
	stored.GatewayRequestID = &id
	stored.UpdatedAt = tx.UpdatedAt
	return true, nil
}

func (r *transactionRepository) Transition(ctx context.Context, tx *entity.Transaction, from entity.TransactionStatus) (bool, error) {
	if err := r.s.checkContext(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.transactions[tx.ID]
	if !ok {
		return false, errs.ErrTransactionNotFound
	}
	if stored.Status != from {
		return false, nil
	}
	next := tx.Clone()
	stored.Status = next.Status
	stored.GatewayReceipt = next.GatewayReceipt
	stored.PayerPhone = next.PayerPhone
	stored.Message = next.Message
	stored.UpdatedAt = next.UpdatedAt
	return true, nil
}

func (r *transactionRepository) ListStalePending(_ context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, tx := range r.s.transactions {
		if tx.Status == entity.StatusPending && tx.CreatedAt.Before(cutoff) {
			out = append(out, tx.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *transactionRepository) ListByCreator(_ context.Context, creatorID uint64, limit int) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Transaction
	for _, tx := range r.s.transactions {
		if tx.CreatorID == creatorID {
			out = append(out, tx.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *transactionRepository) Totals(_ context.Context, creatorID uint64) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	completed, pending := decimal.Zero, decimal.Zero
	for _, tx := range r.s.transactions {
		if tx.CreatorID != creatorID {
			continue
		}
		switch {
		case tx.Status == entity.StatusCompleted && !tx.Withdrawn:
			completed = completed.Add(tx.Amount)
		case tx.Status == entity.StatusPending:
			pending = pending.Add(tx.Amount)
		}
	}
	return completed, pending, nil
}

type withdrawalRepository struct{ s *Store }

func (r *withdrawalRepository) Create(ctx context.Context, w *entity.Withdrawal) error {
	if err := r.s.checkContext(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.creators[w.CreatorID]; !ok {
		return errs.ErrCreatorNotFound
	}
	r.s.nextPayoutID++
	w.ID = r.s.nextPayoutID
	r.s.withdrawals[w.ID] = cloneWithdrawal(w)
	return nil
}

func (r *withdrawalRepository) GetByID(_ context.Context, id uint64) (*entity.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.withdrawals[id]
	if !ok {
		return nil, errs.ErrWithdrawalNotFound
	}
	return cloneWithdrawal(w), nil
}

func (r *withdrawalRepository) GetByRequestID(_ context.Context, requestID string) (*entity.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range r.s.withdrawals {
		if w.RequestID() == requestID {
			return cloneWithdrawal(w), nil
		}
	}
	return nil, errs.ErrWithdrawalNotFound
}

func (r *withdrawalRepository) SetRequestID(ctx context.Context, w *entity.Withdrawal) (bool, error) {
	if err := r.s.checkContext(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.withdrawals[w.ID]
	if !ok {
		return false, errs.ErrWithdrawalNotFound
	}
	if stored.GatewayRequestID != nil {
		return false, nil
	}
	id := w.RequestID()
	stored.GatewayRequestID = &id
	return true, nil
}

func (r *withdrawalRepository) Transition(ctx context.Context, w *entity.Withdrawal, from entity.WithdrawalStatus) (bool, error) {
	if err := r.s.checkContext(ctx); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.withdrawals[w.ID]
	if !ok {
		return false, errs.ErrWithdrawalNotFound
	}
	if stored.Status != from {
		return false, nil
	}
	next := cloneWithdrawal(w)
	stored.Status = next.Status
	stored.GatewayReceipt = next.GatewayReceipt
	stored.FailureReason = next.FailureReason
	stored.CompletedAt = next.CompletedAt
	return true, nil
}

func (r *withdrawalRepository) ListByCreator(_ context.Context, creatorID uint64, limit int) ([]*entity.Withdrawal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Withdrawal
	for _, w := range r.s.withdrawals {
		if w.CreatorID == creatorID {
			out = append(out, cloneWithdrawal(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *withdrawalRepository) Totals(_ context.Context, creatorID uint64) (decimal.Decimal, decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	completed, pending := decimal.Zero, decimal.Zero
	for _, w := range r.s.withdrawals {
		if w.CreatorID != creatorID {
			continue
		}
		switch w.Status {
		case entity.WithdrawalCompleted:
			completed = completed.Add(w.Amount)
		case entity.WithdrawalPending:
			pending = pending.Add(w.Amount)
		}
	}
	return completed, pending, nil
}

func cloneWithdrawal(w *entity.Withdrawal) *entity.Withdrawal {
	c := *w
	if w.GatewayReceipt != nil {
		v := *w.GatewayReceipt
		c.GatewayReceipt = &v
	}
	if w.GatewayRequestID != nil {
		v := *w.GatewayRequestID
		c.GatewayRequestID = &v
	}
	if w.FailureReason != nil {
		v := *w.FailureReason
		c.FailureReason = &v
	}
	if w.CompletedAt != nil {
		v := *w.CompletedAt
		c.CompletedAt = &v
	}
	return &c
}
