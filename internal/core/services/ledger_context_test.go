package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fince/internal/adapters/database/memory"
	"github.com/SscSPs/fince/internal/apperrors"
	"github.com/SscSPs/fince/internal/core/domain"
	portssvc "github.com/SscSPs/fince/internal/core/ports/services"
	"github.com/SscSPs/fince/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mocks ---

type MockExtractor struct {
	mock.Mock
}

var _ portssvc.Extractor = (*MockExtractor)(nil)

func (m *MockExtractor) Extract(ctx context.Context, text string, language domain.Language) []domain.TransactionDraft {
	args := m.Called(ctx, text, language)
	return args.Get(0).([]domain.TransactionDraft)
}

type MockAdvisor struct {
	mock.Mock
}

var _ portssvc.Advisor = (*MockAdvisor)(nil)

func (m *MockAdvisor) Advise(ctx context.Context, req domain.AdviceRequest) string {
	args := m.Called(ctx, req)
	return args.String(0)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func sequentialIDs() func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func draft(label string, amount string) domain.TransactionDraft {
	return domain.TransactionDraft{Label: label, Category: "misc", Amount: json.Number(amount)}
}

// --- Test Suite ---

type LedgerContextTestSuite struct {
	suite.Suite
	ctx       context.Context
	repo      *memory.SnapshotRepository
	extractor *MockExtractor
	advisor   *MockAdvisor
	clock     *fakeClock
	registry  *services.LedgerRegistry
	ledger    portssvc.LedgerSvcFacade
}

func (suite *LedgerContextTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = memory.NewSnapshotRepository()
	suite.extractor = new(MockExtractor)
	suite.advisor = new(MockAdvisor)
	suite.clock = &fakeClock{now: time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)}
	suite.registry = services.NewLedgerRegistry(suite.repo, suite.extractor, suite.advisor,
		services.WithClock(suite.clock.Now),
		services.WithIDGenerator(sequentialIDs()),
	)

	ledger, err := suite.registry.Open(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.ledger = ledger
}

func (suite *LedgerContextTestSuite) balance() decimal.Decimal {
	return suite.ledger.Summary(suite.ctx).CurrentBalance
}

func (suite *LedgerContextTestSuite) saved() domain.Snapshot {
	s, err := suite.repo.Load(suite.ctx, "alice")
	suite.Require().NoError(err)
	return s
}

// --- Test Cases ---

func (suite *LedgerContextTestSuite) TestGoalScenario_CompleteAndRevert() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("100")))
	_, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("pizza", "-20")})
	suite.Require().NoError(err)
	suite.True(suite.balance().Equal(dec("80")))

	goal, err := suite.ledger.CreateGoal(suite.ctx, "Bike", dec("50"))
	suite.Require().NoError(err)
	suite.False(goal.Completed)

	completed, txn, err := suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)
	suite.True(completed.Completed)
	suite.True(txn.Amount.Equal(dec("-50")))
	suite.Equal("Goal reached: Bike", txn.Label)
	suite.Equal(domain.GoalCategory, txn.Category)
	suite.True(txn.IsLinkedToGoal(goal.GoalID))
	suite.True(suite.balance().Equal(dec("30")))

	reverted, err := suite.ledger.RevertGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)
	suite.False(reverted.Completed)
	suite.True(suite.balance().Equal(dec("80")))

	saved := suite.saved()
	suite.Len(saved.Transactions, 1)
	suite.False(saved.Goals[0].Completed)
}

func (suite *LedgerContextTestSuite) TestCompleteGoal_InsufficientFundsDoesNotMutate() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("80")))
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Car", dec("200"))
	suite.Require().NoError(err)
	before := suite.saved()

	_, _, err = suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	var insufficient *apperrors.InsufficientFundsError
	suite.Require().ErrorAs(err, &insufficient)
	suite.True(insufficient.Shortfall.Equal(dec("120")))
	suite.Equal(before, suite.saved())
	suite.Empty(suite.ledger.Summary(suite.ctx).Groups)
	suite.False(suite.ledger.Summary(suite.ctx).Goals[0].Completed)
}

func (suite *LedgerContextTestSuite) TestCompleteGoal_Errors() {
	_, _, err := suite.ledger.CompleteGoal(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("100")))
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Trip", dec("10"))
	suite.Require().NoError(err)
	_, _, err = suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)

	_, _, err = suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.ErrorIs(err, apperrors.ErrAlreadyCompleted)
}

func (suite *LedgerContextTestSuite) TestRevertGoal_NotCompleted() {
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Trip", dec("10"))
	suite.Require().NoError(err)

	_, err = suite.ledger.RevertGoal(suite.ctx, goal.GoalID)

	suite.ErrorIs(err, apperrors.ErrNotCompleted)
}

func (suite *LedgerContextTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	_, err := suite.ledger.CreateGoal(suite.ctx, "Nothing", dec("0"))

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Empty(suite.saved().Goals)
}

func (suite *LedgerContextTestSuite) TestDeleteCompletedGoal_CascadesToTransaction() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("100")))
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Phone", dec("60"))
	suite.Require().NoError(err)
	_, _, err = suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.ledger.DeleteGoal(suite.ctx, goal.GoalID))

	suite.True(suite.balance().Equal(dec("100")))
	suite.Empty(suite.saved().Transactions)
	suite.Empty(suite.saved().Goals)
	suite.NoError(suite.ledger.DeleteGoal(suite.ctx, goal.GoalID))
}

func (suite *LedgerContextTestSuite) TestRemoveGoalTransaction_ReopensGoal() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("100")))
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Phone", dec("60"))
	suite.Require().NoError(err)
	_, txn, err := suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.ledger.RemoveTransaction(suite.ctx, txn.TransactionID))

	suite.False(suite.saved().Goals[0].Completed)
	_, _, err = suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.NoError(err)
}

func (suite *LedgerContextTestSuite) TestGoalProgress_Clamped() {
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Bike", dec("50"))
	suite.Require().NoError(err)

	cases := map[string]string{"-10": "0", "0": "0", "25": "0.5", "500": "1"}
	for initial, want := range cases {
		suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec(initial)))
		progress, err := suite.ledger.GoalProgress(suite.ctx, goal.GoalID)
		suite.Require().NoError(err)
		suite.True(progress.Equal(dec(want)), "initial %s: got %s", initial, progress)
	}

	_, err = suite.ledger.GoalProgress(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerContextTestSuite) TestBalance_IndependentOfBatching() {
	_, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("a", "10.10"), draft("b", "-3.05"), draft("c", "0")})
	suite.Require().NoError(err)

	other, err := suite.registry.Open(suite.ctx, "bob")
	suite.Require().NoError(err)
	for _, d := range []domain.TransactionDraft{draft("a", "10.10"), draft("b", "-3.05"), draft("c", "0")} {
		_, err := other.AddDrafts(suite.ctx, []domain.TransactionDraft{d})
		suite.Require().NoError(err)
	}

	suite.True(suite.balance().Equal(other.Summary(suite.ctx).CurrentBalance))
	suite.True(suite.balance().Equal(dec("7.05")))
}

func (suite *LedgerContextTestSuite) TestHistory_LastPointIsCurrentBalance() {
	history := suite.ledger.History(suite.ctx)
	suite.Require().Len(history, 1)
	suite.Equal(domain.HistorySeedLabel, history[0].Label)
	suite.True(history[0].Balance.Equal(suite.balance()))

	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("5")))
	_, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("a very long label", "10"), draft("b", "-4")})
	suite.Require().NoError(err)

	history = suite.ledger.History(suite.ctx)
	suite.Require().Len(history, 3)
	suite.True(history[len(history)-1].Balance.Equal(suite.balance()))
	suite.Equal("a very lon", history[1].Label)
}

func (suite *LedgerContextTestSuite) TestAddDrafts_InvalidAmountRejectsWholeBatch() {
	_, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("ok", "5"), draft("bad", "abc")})

	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
	suite.Empty(suite.ledger.Summary(suite.ctx).Groups)
	suite.Empty(suite.saved().Transactions)
}

func (suite *LedgerContextTestSuite) TestAddDrafts_AssignsIDsAndDate() {
	added, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft(" coffee ", "-3"), draft("tea", "-2")})

	suite.Require().NoError(err)
	suite.Require().Len(added, 2)
	suite.NotEqual(added[0].TransactionID, added[1].TransactionID)
	suite.Equal("coffee", added[0].Label)
	suite.Equal(domain.NewDate(2024, time.March, 5), added[0].OccurredOn)
}

func (suite *LedgerContextTestSuite) TestAddDrafts_DropsGoalLinks() {
	goalID := "forged"
	d := draft("fake goal", "-5")
	d.LinkedGoalID = &goalID

	added, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{d})

	suite.Require().NoError(err)
	suite.Nil(added[0].LinkedGoalID)
}

func (suite *LedgerContextTestSuite) TestSaveFailure_LeavesStateUnchanged() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("10")))
	suite.repo.FailSaves(assert.AnError)

	_, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("x", "5")})
	suite.ErrorIs(err, assert.AnError)
	_, err = suite.ledger.CreateGoal(suite.ctx, "Bike", dec("5"))
	suite.ErrorIs(err, assert.AnError)

	summary := suite.ledger.Summary(suite.ctx)
	suite.True(summary.CurrentBalance.Equal(dec("10")))
	suite.Empty(summary.Goals)

	suite.repo.FailSaves(nil)
	_, err = suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("x", "5")})
	suite.NoError(err)
	suite.True(suite.balance().Equal(dec("15")))
}

func (suite *LedgerContextTestSuite) TestObligationScenario_Netflix() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("100")))
	netflix, err := suite.ledger.CreateObligation(suite.ctx, "Netflix", dec("15"))
	suite.Require().NoError(err)

	txn, err := suite.ledger.PayObligation(suite.ctx, netflix.ObligationID)
	suite.Require().NoError(err)
	suite.Equal("Payment: Netflix", txn.Label)
	suite.Equal(domain.ObligationCategory, txn.Category)
	suite.True(txn.Amount.Equal(dec("-15")))
	suite.Require().NotNil(txn.LinkedObligationID)
	suite.Equal(netflix.ObligationID, *txn.LinkedObligationID)
	suite.True(suite.balance().Equal(dec("85")))
	suite.True(suite.ledger.Summary(suite.ctx).ObligationCost.Equal(dec("15")))

	suite.Require().NoError(suite.ledger.RemoveObligation(suite.ctx, netflix.ObligationID))
	suite.NoError(suite.ledger.RemoveObligation(suite.ctx, netflix.ObligationID))
	suite.Len(suite.saved().Transactions, 1)
	suite.Empty(suite.saved().Obligations)
}

func (suite *LedgerContextTestSuite) TestObligation_ValidationAndUpdate() {
	_, err := suite.ledger.CreateObligation(suite.ctx, "Gym", dec("0"))
	suite.ErrorIs(err, apperrors.ErrInvalidCost)
	_, err = suite.ledger.CreateObligation(suite.ctx, "  ", dec("10"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	_, err = suite.ledger.PayObligation(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	gym, err := suite.ledger.CreateObligation(suite.ctx, "Gym", dec("30"))
	suite.Require().NoError(err)

	negative := dec("-1")
	_, err = suite.ledger.UpdateObligation(suite.ctx, gym.ObligationID, nil, &negative)
	suite.ErrorIs(err, apperrors.ErrInvalidCost)

	name := "Gym plus"
	updated, err := suite.ledger.UpdateObligation(suite.ctx, gym.ObligationID, &name, nil)
	suite.Require().NoError(err)
	suite.Equal("Gym plus", updated.Name)
	suite.True(updated.Cost.Equal(dec("30")))

	_, err = suite.ledger.UpdateObligation(suite.ctx, "missing", &name, nil)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerContextTestSuite) TestEditTransaction() {
	added, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("lunch", "-12")})
	suite.Require().NoError(err)
	id := added[0].TransactionID

	label := "dinner"
	amount := json.Number("-30")
	edited, err := suite.ledger.EditTransaction(suite.ctx, domain.EditTransactionCommand{TransactionID: id, NewLabel: &label, NewAmount: &amount})
	suite.Require().NoError(err)
	suite.Equal("dinner", edited.Label)
	suite.True(suite.balance().Equal(dec("-30")))

	_, err = suite.ledger.EditTransaction(suite.ctx, domain.EditTransactionCommand{TransactionID: "missing", NewLabel: &label})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	bad := json.Number("1e")
	_, err = suite.ledger.EditTransaction(suite.ctx, domain.EditTransactionCommand{TransactionID: id, NewAmount: &bad})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = suite.ledger.EditTransaction(suite.ctx, domain.EditTransactionCommand{TransactionID: id})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerContextTestSuite) TestEditTransaction_GoalLinkedAmountIsFixed() {
	suite.Require().NoError(suite.ledger.SetInitialBalance(suite.ctx, dec("100")))
	goal, err := suite.ledger.CreateGoal(suite.ctx, "Bike", dec("50"))
	suite.Require().NoError(err)
	_, txn, err := suite.ledger.CompleteGoal(suite.ctx, goal.GoalID)
	suite.Require().NoError(err)

	amount := json.Number("-10")
	_, err = suite.ledger.EditTransaction(suite.ctx, domain.EditTransactionCommand{TransactionID: txn.TransactionID, NewAmount: &amount})
	suite.ErrorIs(err, apperrors.ErrValidation)

	label := "Bike bought"
	edited, err := suite.ledger.EditTransaction(suite.ctx, domain.EditTransactionCommand{TransactionID: txn.TransactionID, NewLabel: &label})
	suite.Require().NoError(err)
	suite.Equal("Bike bought", edited.Label)
}

func (suite *LedgerContextTestSuite) TestGroupByDate_ThreeGroupsWithFallbackLabel() {
	suite.Require().NoError(suite.repo.Save(suite.ctx, "carol", domain.Snapshot{
		InitialBalance: decimal.Zero,
		Transactions: []domain.Transaction{
			{TransactionID: "old", Label: "legacy", Amount: dec("-1")},
			{TransactionID: "t1", Label: "first", Amount: dec("-2"), OccurredOn: domain.NewDate(2024, time.March, 5)},
		},
	}))
	registry := services.NewLedgerRegistry(suite.repo, suite.extractor, suite.advisor,
		services.WithClock(suite.clock.Now),
		services.WithIDGenerator(sequentialIDs()),
		services.WithUndatedGroupLabel("Antes"),
	)
	carol, err := registry.Open(suite.ctx, "carol")
	suite.Require().NoError(err)

	suite.clock.Set(time.Date(2024, time.March, 6, 9, 0, 0, 0, time.UTC))
	_, err = carol.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("second", "-3"), draft("third", "-4")})
	suite.Require().NoError(err)

	groups := carol.GroupByDate(suite.ctx)
	suite.Require().Len(groups, 3)
	suite.Equal("6/3/2024", groups[0].Label)
	suite.Len(groups[0].Transactions, 2)
	suite.Equal("second", groups[0].Transactions[0].Label)
	suite.Equal("5/3/2024", groups[1].Label)
	suite.Equal("Antes", groups[2].Label)
	suite.Equal("old", groups[2].Transactions[0].TransactionID)

	history := carol.History(suite.ctx)
	suite.Equal("legacy", history[1].Label, "undated transactions come first in history")
}

func (suite *LedgerContextTestSuite) TestExtractAndAdd() {
	suite.extractor.On("Extract", mock.Anything, "pizza 12 and salary 1000", domain.LanguageEnglish).
		Return([]domain.TransactionDraft{draft("pizza", "-12"), draft("salary", "1000")}).Once()

	added, err := suite.ledger.ExtractAndAdd(suite.ctx, "pizza 12 and salary 1000", "en")

	suite.Require().NoError(err)
	suite.Len(added, 2)
	suite.True(suite.balance().Equal(dec("988")))
	suite.extractor.AssertExpectations(suite.T())
}

func (suite *LedgerContextTestSuite) TestExtractAndAdd_NothingExtracted() {
	suite.extractor.On("Extract", mock.Anything, "hello", domain.LanguageSpanish).
		Return([]domain.TransactionDraft{}).Once()

	added, err := suite.ledger.ExtractAndAdd(suite.ctx, "hello", "klingon")

	suite.Require().NoError(err)
	suite.Empty(added)
}

func (suite *LedgerContextTestSuite) TestExtractAndAdd_RejectsOverlap() {
	started := make(chan struct{})
	release := make(chan struct{})
	suite.extractor.On("Extract", mock.Anything, "slow", mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]domain.TransactionDraft{draft("slow", "-1")}).Once()

	done := make(chan error, 1)
	go func() {
		_, err := suite.ledger.ExtractAndAdd(suite.ctx, "slow", "es")
		done <- err
	}()
	<-started

	_, err := suite.ledger.ExtractAndAdd(suite.ctx, "fast", "es")
	suite.ErrorIs(err, apperrors.ErrExtractionInProgress)

	// The ledger stays usable while the extraction is pending.
	_, err = suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("manual", "-2")})
	suite.NoError(err)

	close(release)
	suite.NoError(<-done)
	suite.True(suite.balance().Equal(dec("-3")))
}

func (suite *LedgerContextTestSuite) TestAdvice_SendsRecentTransactions() {
	drafts := make([]domain.TransactionDraft, 12)
	for i := range drafts {
		drafts[i] = draft(fmt.Sprintf("t%d", i), "-1")
	}
	_, err := suite.ledger.AddDrafts(suite.ctx, drafts)
	suite.Require().NoError(err)

	suite.advisor.On("Advise", mock.Anything, mock.MatchedBy(func(req domain.AdviceRequest) bool {
		return len(req.Recent) == domain.AdviceRecentLimit &&
			req.Recent[0].Label == "t2" &&
			req.Balance.Equal(dec("-12")) &&
			req.Topic == "savings" &&
			req.Language == domain.LanguageGerman
	})).Return("Spar mehr").Once()

	suite.Equal("Spar mehr", suite.ledger.Advice(suite.ctx, "savings", "de"))
	suite.advisor.AssertExpectations(suite.T())
}

func (suite *LedgerContextTestSuite) TestRegistry_OpenCloseReload() {
	_, err := suite.ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("kept", "7")})
	suite.Require().NoError(err)

	again, err := suite.registry.Open(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.Same(suite.ledger, again)

	suite.registry.Close("alice")
	reopened, err := suite.registry.Open(suite.ctx, "alice")
	suite.Require().NoError(err)
	suite.NotSame(suite.ledger, reopened)
	suite.True(reopened.Summary(suite.ctx).CurrentBalance.Equal(dec("7")))

	_, err = suite.registry.Open(suite.ctx, " ")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerContextTestSuite) TestRegistry_ClosedHandleCannotOverwrite() {
	stale := suite.ledger
	suite.registry.Close("alice")

	fresh, err := suite.registry.Open(suite.ctx, "alice")
	suite.Require().NoError(err)
	_, err = fresh.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("fresh", "-5")})
	suite.Require().NoError(err)

	_, err = stale.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("stale", "-3")})
	suite.ErrorIs(err, apperrors.ErrLedgerClosed)
	suite.ErrorIs(stale.SetInitialBalance(suite.ctx, dec("1000")), apperrors.ErrLedgerClosed)

	saved := suite.saved()
	suite.Require().Len(saved.Transactions, 1)
	suite.Equal("fresh", saved.Transactions[0].Label)
	suite.True(saved.InitialBalance.IsZero())
	suite.True(fresh.Summary(suite.ctx).CurrentBalance.Equal(dec("-5")))

	// Closing an unknown or already closed ledger is a no-op.
	suite.registry.Close("alice")
	suite.registry.Close("bob")
}

func (suite *LedgerContextTestSuite) TestRegistry_CloseWaitsForRunningSave() {
	blocking := &blockingRepo{SnapshotRepository: suite.repo, entered: make(chan struct{}), release: make(chan struct{})}
	registry := services.NewLedgerRegistry(blocking, suite.extractor, suite.advisor, services.WithIDGenerator(sequentialIDs()))
	ledger, err := registry.Open(suite.ctx, "carol")
	suite.Require().NoError(err)

	saved := make(chan error, 1)
	go func() {
		_, err := ledger.AddDrafts(suite.ctx, []domain.TransactionDraft{draft("rent", "-700")})
		saved <- err
	}()
	<-blocking.entered

	closed := make(chan struct{})
	go func() {
		registry.Close("carol")
		close(closed)
	}()
	select {
	case <-closed:
		suite.Fail("Close returned while a save was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(blocking.release)
	suite.Require().NoError(<-saved)
	<-closed

	reopened, err := registry.Open(suite.ctx, "carol")
	suite.Require().NoError(err)
	suite.True(reopened.Summary(suite.ctx).CurrentBalance.Equal(dec("-700")))
}

// blockingRepo holds the first Save until release is closed.
type blockingRepo struct {
	*memory.SnapshotRepository
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (r *blockingRepo) Save(ctx context.Context, ledgerID string, snapshot domain.Snapshot) error {
	r.once.Do(func() {
		close(r.entered)
		<-r.release
	})
	return r.SnapshotRepository.Save(ctx, ledgerID, snapshot)
}

func TestLedgerContextTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerContextTestSuite))
}
