// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/util"
)

// the placeholder replaced in a URI template
const idPlaceholder = "{id}"

var approvedFlag = []byte{0x01}

// Ledger - balances, supply and operator approvals
type Ledger struct {
	balances  *storage.PoolHandle // owner ++ id        → count
	supply    *storage.PoolHandle // id                 → count
	operators *storage.PoolHandle // owner ++ operator  → flag
}

// New - ledger over the given pools
func New(balances *storage.PoolHandle, supply *storage.PoolHandle, operators *storage.PoolHandle) *Ledger {
	return &Ledger{
		balances:  balances,
		supply:    supply,
		operators: operators,
	}
}

// BalanceKey - key of an (owner, id) balance record
func BalanceKey(owner *account.Account, id uint64) []byte {
	return util.Concat(owner.Bytes(), util.Uint64ToBytes(id))
}

func operatorKey(owner *account.Account, operator *account.Account) []byte {
	return util.Concat(owner.Bytes(), operator.Bytes())
}

// Mint - create amount units of id for owner
//
// authorisation is the caller's responsibility
func (l *Ledger) Mint(trx storage.Transaction, owner *account.Account, id uint64, amount uint64) error {
	if nil == owner {
		return fault.ErrInvalidRecipient
	}

	supply, _ := trx.GetN(l.supply, util.Uint64ToBytes(id))
	if supply+amount < supply {
		return fault.With(fault.ErrQuantityOverflow, "id: %d  supply: %d  amount: %d", id, supply, amount)
	}

	// balance <= supply, so it cannot overflow here
	if err := l.credit(trx, owner, id, amount); nil != err {
		return err
	}
	trx.PutN(l.supply, util.Uint64ToBytes(id), supply+amount)
	return nil
}

// Burn - destroy amount units of id held by owner
//
// caller must be the owner or one of its approved operators
func (l *Ledger) Burn(trx storage.Transaction, caller *account.Account, owner *account.Account, id uint64, amount uint64) error {
	if err := l.requireOperator(trx, caller, owner); nil != err {
		return err
	}
	if err := l.debit(trx, owner, id, amount); nil != err {
		return err
	}

	supply, _ := trx.GetN(l.supply, util.Uint64ToBytes(id))
	if supply < amount {
		return fault.With(fault.ErrInsufficientBalance, "id: %d  supply: %d  amount: %d", id, supply, amount)
	}
	if supply == amount {
		trx.Delete(l.supply, util.Uint64ToBytes(id))
	} else {
		trx.PutN(l.supply, util.Uint64ToBytes(id), supply-amount)
	}
	return nil
}

// Transfer - move amount units of id from one owner to another
//
// caller must be the sender or one of its approved operators
func (l *Ledger) Transfer(trx storage.Transaction, caller *account.Account, from *account.Account, to *account.Account, id uint64, amount uint64) error {
	if err := l.requireOperator(trx, caller, from); nil != err {
		return err
	}
	if nil == to {
		return fault.ErrInvalidRecipient
	}
	return l.move(trx, from, to, id, amount)
}

// BatchTransfer - several transfers between the same pair of owners
//
// any failure leaves staged writes in the transaction; the caller must
// abort so that none of the batch takes effect
func (l *Ledger) BatchTransfer(trx storage.Transaction, caller *account.Account, from *account.Account, to *account.Account, ids []uint64, amounts []uint64) error {
	if len(ids) != len(amounts) {
		return fault.With(fault.ErrLengthMismatch, "ids: %d  amounts: %d", len(ids), len(amounts))
	}
	if err := l.requireOperator(trx, caller, from); nil != err {
		return err
	}
	if nil == to {
		return fault.ErrInvalidRecipient
	}
	for i, id := range ids {
		if err := l.move(trx, from, to, id, amounts[i]); nil != err {
			return err
		}
	}
	return nil
}

// SetApprovalForAll - grant or revoke operator rights over all of the
// owner's balances
func (l *Ledger) SetApprovalForAll(trx storage.Transaction, owner *account.Account, operator *account.Account, approved bool) error {
	if nil == owner {
		return fault.ErrMissingCaller
	}
	if nil == operator {
		return fault.ErrInvalidRecipient
	}
	if owner.Equal(operator) {
		return fault.ErrSelfApproval
	}

	key := operatorKey(owner, operator)
	if approved {
		trx.Put(l.operators, key, approvedFlag)
	} else {
		trx.Delete(l.operators, key)
	}
	return nil
}

// IsApprovedForAll - true if operator may move all of owner's balances
func (l *Ledger) IsApprovedForAll(reader storage.Reader, owner *account.Account, operator *account.Account) bool {
	if nil == owner || nil == operator {
		return false
	}
	return reader.Has(l.operators, operatorKey(owner, operator))
}

// BalanceOf - quantity of id held by owner
func (l *Ledger) BalanceOf(reader storage.Reader, owner *account.Account, id uint64) uint64 {
	if nil == owner {
		return 0
	}
	balance, _ := reader.GetN(l.balances, BalanceKey(owner, id))
	return balance
}

// BalanceOfBatch - BalanceOf for each (owners[i], ids[i]) pair
func (l *Ledger) BalanceOfBatch(reader storage.Reader, owners []*account.Account, ids []uint64) ([]uint64, error) {
	if len(owners) != len(ids) {
		return nil, fault.With(fault.ErrLengthMismatch, "owners: %d  ids: %d", len(owners), len(ids))
	}
	balances := make([]uint64, len(ids))
	for i, id := range ids {
		balances[i] = l.BalanceOf(reader, owners[i], id)
	}
	return balances, nil
}

// TotalSupply - units of id in existence
func (l *Ledger) TotalSupply(reader storage.Reader, id uint64) uint64 {
	supply, _ := reader.GetN(l.supply, util.Uint64ToBytes(id))
	return supply
}

// URI - render the metadata address of id from a template
//
// "{id}" is replaced by the 64 digit lowercase hex id; a template
// without the placeholder has the decimal id appended
func URI(template string, id uint64) string {
	if strings.Contains(template, idPlaceholder) {
		hexID := strings.Repeat("0", 48) + hex.EncodeToString(util.Uint64ToBytes(id))
		return strings.Replace(template, idPlaceholder, hexID, -1)
	}
	return template + strconv.FormatUint(id, 10)
}

func (l *Ledger) requireOperator(reader storage.Reader, caller *account.Account, owner *account.Account) error {
	if nil == caller {
		return fault.ErrMissingCaller
	}
	if nil == owner {
		return fault.ErrInvalidRecipient
	}
	if caller.Equal(owner) || l.IsApprovedForAll(reader, owner, caller) {
		return nil
	}
	return fault.With(fault.ErrNotOperator, "caller: %s  owner: %s", caller, owner)
}

func (l *Ledger) move(trx storage.Transaction, from *account.Account, to *account.Account, id uint64, amount uint64) error {
	if err := l.debit(trx, from, id, amount); nil != err {
		return err
	}
	return l.credit(trx, to, id, amount)
}

func (l *Ledger) debit(trx storage.Transaction, owner *account.Account, id uint64, amount uint64) error {
	key := BalanceKey(owner, id)
	balance, _ := trx.GetN(l.balances, key)
	if balance < amount {
		return fault.With(fault.ErrInsufficientBalance, "owner: %s  id: %d  balance: %d  amount: %d", owner, id, balance, amount)
	}
	if balance == amount {
		trx.Delete(l.balances, key)
	} else {
		trx.PutN(l.balances, key, balance-amount)
	}
	return nil
}

func (l *Ledger) credit(trx storage.Transaction, owner *account.Account, id uint64, amount uint64) error {
	if 0 == amount {
		return nil
	}
	key := BalanceKey(owner, id)
	balance, _ := trx.GetN(l.balances, key)
	if balance+amount < balance {
		return fault.With(fault.ErrQuantityOverflow, "owner: %s  id: %d  balance: %d  amount: %d", owner, id, balance, amount)
	}
	trx.PutN(l.balances, key, balance+amount)
	return nil
}
