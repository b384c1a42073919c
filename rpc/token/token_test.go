// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/rpc/fixtures"
	"github.com/bitmark-inc/propertyd/rpc/mocks"
	"github.com/bitmark-inc/propertyd/rpc/token"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setup(t *testing.T) (*gomock.Controller, *mocks.MockHandle, *mocks.MockLogic, *token.Token) {
	ctl := gomock.NewController(t)
	h := mocks.NewMockHandle(ctl)
	l := mocks.NewMockLogic(ctl)
	return ctl, h, l, token.New(logger.New(fixtures.LogCategory), h)
}

func TestMint(t *testing.T) {
	ctl, h, l, tok := setup(t)
	defer ctl.Finish()

	minter := fixtures.Account()
	to := fixtures.Account()

	h.EXPECT().Execute(minter, gomock.Any()).DoAndReturn(fixtures.ExecuteOn(l)).Times(1)
	l.EXPECT().Mint(gomock.Any(), to, uint64(5), uint64(250)).DoAndReturn(
		func(call *logic.Call, to *account.Account, id uint64, amount uint64) error {
			call.Emit(logic.EventTransferSingle, logic.TransferSingle{
				Operator: call.Caller,
				To:       to,
				ID:       id,
				Amount:   amount,
			})
			return nil
		}).Times(1)

	var reply token.WriteReply
	err := tok.Mint(&token.MintArguments{
		Caller: minter,
		To:     to,
		ID:     5,
		Amount: 250,
	}, &reply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, 1, len(reply.Events), "wrong event count")
	assert.Equal(t, logic.EventTransferSingle, reply.Events[0].Kind, "wrong event kind")
	assert.Equal(t, uint64(250), reply.Events[0].Data.(logic.TransferSingle).Amount, "wrong amount")
}

func TestMintMissingRecipient(t *testing.T) {
	ctl, _, _, tok := setup(t)
	defer ctl.Finish()

	var reply token.WriteReply
	err := tok.Mint(&token.MintArguments{
		Caller: fixtures.Account(),
		ID:     5,
		Amount: 250,
	}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "wrong error")
}

func TestTransferFailureHasNoEvents(t *testing.T) {
	ctl, h, l, tok := setup(t)
	defer ctl.Finish()

	from := fixtures.Account()
	to := fixtures.Account()

	h.EXPECT().Execute(from, gomock.Any()).DoAndReturn(fixtures.ExecuteOn(l)).Times(1)
	l.EXPECT().Transfer(gomock.Any(), from, to, uint64(1), uint64(10)).Return(fault.ErrInsufficientBalance).Times(1)

	var reply token.WriteReply
	err := tok.Transfer(&token.TransferArguments{
		Caller: from,
		From:   from,
		To:     to,
		ID:     1,
		Amount: 10,
	}, &reply)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "wrong error")
	assert.Nil(t, reply.Events, "events after failure")
}

func TestBatchTransfer(t *testing.T) {
	ctl, h, l, tok := setup(t)
	defer ctl.Finish()

	from := fixtures.Account()
	to := fixtures.Account()
	ids := []uint64{1, 2}
	amounts := []uint64{3, 4}

	h.EXPECT().Execute(from, gomock.Any()).DoAndReturn(fixtures.ExecuteOn(l)).Times(1)
	l.EXPECT().BatchTransfer(gomock.Any(), from, to, ids, amounts).Return(nil).Times(1)

	var reply token.WriteReply
	err := tok.BatchTransfer(&token.BatchTransferArguments{
		Caller:  from,
		From:    from,
		To:      to,
		IDs:     ids,
		Amounts: amounts,
	}, &reply)
	assert.Nil(t, err, "wrong BatchTransfer")

	err = tok.BatchTransfer(&token.BatchTransferArguments{
		Caller: from,
		From:   from,
		To:     to,
	}, &reply)
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "empty batch: %v", err)

	err = tok.BatchTransfer(&token.BatchTransferArguments{
		Caller:  from,
		From:    from,
		To:      to,
		IDs:     make([]uint64, token.MaximumBatchCount+1),
		Amounts: make([]uint64, token.MaximumBatchCount+1),
	}, &reply)
	assert.True(t, errors.Is(err, fault.ErrInvalidCount), "oversize batch: %v", err)
}

func TestApproval(t *testing.T) {
	ctl, h, l, tok := setup(t)
	defer ctl.Finish()

	owner := fixtures.Account()
	operator := fixtures.Account()

	h.EXPECT().Execute(owner, gomock.Any()).DoAndReturn(fixtures.ExecuteOn(l)).Times(1)
	l.EXPECT().SetApprovalForAll(gomock.Any(), operator, true).Return(nil).Times(1)

	h.EXPECT().Query(gomock.Any()).DoAndReturn(fixtures.QueryOn(l)).Times(1)
	l.EXPECT().IsApprovedForAll(gomock.Any(), owner, operator).Return(true).Times(1)

	var writeReply token.WriteReply
	err := tok.SetApprovalForAll(&token.SetApprovalArguments{
		Caller:   owner,
		Operator: operator,
		Approved: true,
	}, &writeReply)
	assert.Nil(t, err, "wrong SetApprovalForAll")

	var reply token.IsApprovedReply
	err = tok.IsApprovedForAll(&token.IsApprovedArguments{
		Owner:    owner,
		Operator: operator,
	}, &reply)
	assert.Nil(t, err, "wrong IsApprovedForAll")
	assert.True(t, reply.Approved, "wrong approval")
}

func TestQueries(t *testing.T) {
	ctl, h, l, tok := setup(t)
	defer ctl.Finish()

	a := fixtures.Account()
	b := fixtures.Account()

	h.EXPECT().Query(gomock.Any()).DoAndReturn(fixtures.QueryOn(l)).Times(4)
	l.EXPECT().BalanceOf(gomock.Any(), a, uint64(7)).Return(uint64(600)).Times(1)
	l.EXPECT().BalanceOfBatch(gomock.Any(), []*account.Account{a, b}, []uint64{7, 7}).Return([]uint64{600, 400}, nil).Times(1)
	l.EXPECT().TotalSupply(gomock.Any(), uint64(7)).Return(uint64(1000)).Times(1)
	l.EXPECT().URI(gomock.Any(), uint64(7)).Return("https://example.com/7.json").Times(1)

	var balance token.BalanceReply
	err := tok.Balance(&token.BalanceArguments{Owner: a, ID: 7}, &balance)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(600), balance.Balance, "wrong balance")

	var batch token.BalanceBatchReply
	err = tok.BalanceBatch(&token.BalanceBatchArguments{
		Owners: []*account.Account{a, b},
		IDs:    []uint64{7, 7},
	}, &batch)
	assert.Nil(t, err, "wrong BalanceBatch")
	assert.Equal(t, []uint64{600, 400}, batch.Balances, "wrong balances")

	var supply token.SupplyReply
	err = tok.Supply(&token.IDArguments{ID: 7}, &supply)
	assert.Nil(t, err, "wrong Supply")
	assert.Equal(t, uint64(1000), supply.Supply, "wrong supply")

	var uri token.URIReply
	err = tok.URI(&token.IDArguments{ID: 7}, &uri)
	assert.Nil(t, err, "wrong URI")
	assert.Equal(t, "https://example.com/7.json", uri.URI, "wrong uri")
}

func TestBalanceBatchMismatch(t *testing.T) {
	ctl, h, l, tok := setup(t)
	defer ctl.Finish()

	a := fixtures.Account()

	h.EXPECT().Query(gomock.Any()).DoAndReturn(fixtures.QueryOn(l)).Times(1)
	l.EXPECT().BalanceOfBatch(gomock.Any(), []*account.Account{a}, []uint64{1, 2}).Return(nil, fault.ErrLengthMismatch).Times(1)

	var reply token.BalanceBatchReply
	err := tok.BalanceBatch(&token.BalanceBatchArguments{
		Owners: []*account.Account{a},
		IDs:    []uint64{1, 2},
	}, &reply)
	assert.Equal(t, fault.ErrLengthMismatch, err, "wrong error")

	err = tok.BalanceBatch(&token.BalanceBatchArguments{
		Owners: []*account.Account{nil},
		IDs:    []uint64{1},
	}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "nil owner")
}
