package service

import (
	"context"
	"testing"

	"planora/internal/apperr"
	"planora/internal/model"
	"planora/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func newExpenseFixture(t *testing.T) (*ExpenseService, *testutil.FakeUserRepo, *testutil.FakeExpenseRepo, *model.User) {
	t.Helper()
	users := testutil.NewFakeUserRepo()
	expenses := testutil.NewFakeExpenseRepo()
	user, err := users.Create(context.Background(), &model.User{Username: "a", Email: "a@x.com"})
	require.NoError(t, err)
	return NewExpenseService(expenses, users), users, expenses, user
}

func TestCreateExpenseLinksOntoUser(t *testing.T) {
	svc, users, _, user := newExpenseFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, user.ID.Hex(), model.ExpenseRequest{
		Amount: f64(12.5), Category: "food", Date: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 12.5, created.Amount)
	assert.Equal(t, user.ID, created.UserID)

	stored := users.Users[user.ID]
	require.Len(t, stored.Expenses, 1)
	assert.Equal(t, created.ID, stored.Expenses[0])
}

func TestCreateExpenseValidation(t *testing.T) {
	svc, users, expenses, user := newExpenseFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  model.ExpenseRequest
	}{
		{"missing_amount", model.ExpenseRequest{Category: "food", Date: "2024-01-01"}},
		{"missing_category", model.ExpenseRequest{Amount: f64(1), Date: "2024-01-01"}},
		{"missing_date", model.ExpenseRequest{Amount: f64(1), Category: "food"}},
		{"negative_amount", model.ExpenseRequest{Amount: f64(-1), Category: "food", Date: "2024-01-01"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, user.ID.Hex(), tc.req)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}

	// validation happens before persistence: nothing was written
	assert.Empty(t, expenses.Expenses)
	assert.Empty(t, users.Users[user.ID].Expenses)
}

func TestListExpensesPreservesInsertionOrder(t *testing.T) {
	svc, _, _, user := newExpenseFixture(t)
	ctx := context.Background()

	for _, amount := range []float64{1, 2, 3} {
		_, err := svc.Create(ctx, user.ID.Hex(), model.ExpenseRequest{
			Amount: f64(amount), Category: "food", Date: "2024-01-01",
		})
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, float64(1), listed[0].Amount)
	assert.Equal(t, float64(2), listed[1].Amount)
	assert.Equal(t, float64(3), listed[2].Amount)
}

func TestExpenseOwnershipIsPartOfTheFilter(t *testing.T) {
	svc, users, expenses, owner := newExpenseFixture(t)
	ctx := context.Background()

	other, err := users.Create(ctx, &model.User{Username: "b", Email: "b@x.com"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, owner.ID.Hex(), model.ExpenseRequest{
		Amount: f64(10), Category: "food", Date: "2024-01-01",
	})
	require.NoError(t, err)

	// another user updating or deleting it sees not-found, never forbidden
	_, err = svc.Update(ctx, other.ID.Hex(), created.ID.Hex(), model.ExpenseRequest{
		Amount: f64(99), Category: "x", Date: "2024-01-02",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, other.ID.Hex(), created.ID.Hex())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// untouched
	assert.Equal(t, float64(10), expenses.Expenses[created.ID].Amount)

	// the owner can do both
	updated, err := svc.Update(ctx, owner.ID.Hex(), created.ID.Hex(), model.ExpenseRequest{
		Amount: f64(99), Category: "travel", Date: "2024-01-02",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(99), updated.Amount)

	require.NoError(t, svc.Delete(ctx, owner.ID.Hex(), created.ID.Hex()))
	assert.Empty(t, expenses.Expenses)
}

func TestUpdateMissingExpense(t *testing.T) {
	svc, _, _, user := newExpenseFixture(t)

	_, err := svc.Update(context.Background(), user.ID.Hex(), "64a000000000000000000000", model.ExpenseRequest{
		Amount: f64(1), Category: "food", Date: "2024-01-01",
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
