package bank

import (
	"math"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
)

func TestAccount(t *testing.T) {
	var a Account
	require.NoError(t, a.Deposit(100))

	ok, err := a.Withdraw(50)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(50), a.Balance())
}

func TestAccountNeverNegative(t *testing.T) {
	convey.Convey("withdrawals", t, func() {
		cases := []struct {
			amount  int64
			ok      bool
			balance int64
		}{
			{amount: 30, ok: true, balance: 20},
			{amount: 21, ok: false, balance: 20},
			{amount: 20, ok: true, balance: 0},
			{amount: 1, ok: false, balance: 0},
		}
		var a Account
		convey.So(a.Deposit(50), convey.ShouldBeNil)
		for _, c := range cases {
			ok, err := a.Withdraw(c.amount)
			convey.So(err, convey.ShouldBeNil)
			convey.So(ok, convey.ShouldEqual, c.ok)
			convey.So(a.Balance(), convey.ShouldEqual, c.balance)
		}
	})
}

func TestNegativeAmount(t *testing.T) {
	var a Account
	require.ErrorIs(t, a.Deposit(-1), ErrNegativeAmount)
	_, err := a.Withdraw(-1)
	require.ErrorIs(t, err, ErrNegativeAmount)
	require.Zero(t, a.Balance())
}

func TestDepositOverflow(t *testing.T) {
	var a Account
	require.NoError(t, a.Deposit(math.MaxInt64-1))
	require.ErrorIs(t, a.Deposit(2), ErrOverflow)
	require.Equal(t, int64(math.MaxInt64-1), a.Balance())

	require.NoError(t, a.Deposit(1))
	require.Equal(t, int64(math.MaxInt64), a.Balance())
	require.ErrorIs(t, a.Deposit(1), ErrOverflow)
}
