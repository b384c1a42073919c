// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/propertyd/account"
	"github.com/bitmark-inc/propertyd/fault"
	"github.com/bitmark-inc/propertyd/logic"
	"github.com/bitmark-inc/propertyd/registry"
	"github.com/bitmark-inc/propertyd/rpc/ratelimit"
	"github.com/bitmark-inc/propertyd/storage"
	"github.com/bitmark-inc/propertyd/upgrade"
)

// Property
// --------

const (
	rateLimitProperty = 200
	rateBurstProperty = 100
)

// Property - type for RPC
type Property struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handle  upgrade.Handle
}

// New - create property RPC handler
func New(log *logger.L, handle upgrade.Handle) *Property {
	return &Property{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitProperty, rateBurstProperty),
		Handle:  handle,
	}
}

// WriteReply - events of a committed change
type WriteReply struct {
	Events []logic.Event `json:"events"`
}

// Create a property
// -----------------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	Caller      *account.Account `json:"caller"`
	ID          uint64           `json:"id,string"`
	TotalShares uint64           `json:"totalShares,string"`
}

// Create - register a property owned by the caller
func (property *Property) Create(arguments *CreateArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	property.Log.Infof("Property.Create: %+v", arguments)

	events, err := upgrade.Apply(property.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.CreateProperty(call, arguments.ID, arguments.TotalShares)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// Buy and sell shares
// -------------------

// SharesArguments - arguments for RPC
type SharesArguments struct {
	Caller *account.Account `json:"caller"`
	ID     uint64           `json:"id,string"`
	Amount uint64           `json:"amount,string"`
}

// Purchase - caller takes shares from the available pool
func (property *Property) Purchase(arguments *SharesArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	property.Log.Infof("Property.Purchase: %+v", arguments)

	events, err := upgrade.Apply(property.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.PurchaseShares(call, arguments.ID, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// Sell - caller returns shares to the available pool
func (property *Property) Sell(arguments *SharesArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	property.Log.Infof("Property.Sell: %+v", arguments)

	events, err := upgrade.Apply(property.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		return l.SellShares(call, arguments.ID, arguments.Amount)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// Read property records
// ---------------------

// IDArguments - arguments for RPC calls on a single property
type IDArguments struct {
	ID uint64 `json:"id,string"`
}

// GetReply - a property record
type GetReply struct {
	Property registry.Property `json:"property"`
}

// Get - the record of a property
//
// an absent property reads as a zero record, not an error
func (property *Property) Get(arguments *IDArguments, reply *GetReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return property.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Property = l.Property(reader, arguments.ID)
		return nil
	})
}

// HolderArguments - arguments for RPC
type HolderArguments struct {
	Holder *account.Account `json:"holder"`
	ID     uint64           `json:"id,string"`
}

// SharesReply - a share count
type SharesReply struct {
	Shares uint64 `json:"shares,string"`
}

// Shareholder - shares of a property allocated to a holder
func (property *Property) Shareholder(arguments *HolderArguments, reply *SharesReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Holder {
		return fault.ErrMissingParameters
	}

	return property.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Shares = l.ShareholderShares(reader, arguments.ID, arguments.Holder)
		return nil
	})
}

// Investment - the running investment total of a holder in a property
func (property *Property) Investment(arguments *HolderArguments, reply *SharesReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Holder {
		return fault.ErrMissingParameters
	}

	return property.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.Shares = l.UserInvestment(reader, arguments.Holder, arguments.ID)
		return nil
	})
}

// OwnedArguments - arguments for RPC
type OwnedArguments struct {
	Owner *account.Account `json:"owner"`
}

// OwnedReply - property ids in creation order
type OwnedReply struct {
	IDs []uint64 `json:"ids"`
}

// Owned - properties created by an account
func (property *Property) Owned(arguments *OwnedArguments, reply *OwnedReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner {
		return fault.ErrMissingParameters
	}

	return property.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		reply.IDs = l.UserProperties(reader, arguments.Owner)
		if nil == reply.IDs {
			reply.IDs = []uint64{}
		}
		return nil
	})
}

// Share prices
// ------------

// SetPriceArguments - arguments for RPC
type SetPriceArguments struct {
	Caller *account.Account `json:"caller"`
	ID     uint64           `json:"id,string"`
	Price  uint64           `json:"price,string"`
}

// SetPrice - property owner sets the price of one share
func (property *Property) SetPrice(arguments *SetPriceArguments, reply *WriteReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	property.Log.Infof("Property.SetPrice: %+v", arguments)

	events, err := upgrade.Apply(property.Handle, arguments.Caller, func(l logic.Logic, call *logic.Call) error {
		p, err := logic.PricingOf(l)
		if nil != err {
			return err
		}
		return p.SetSharePrice(call, arguments.ID, arguments.Price)
	})
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

// QuoteArguments - arguments for RPC
type QuoteArguments struct {
	ID     uint64 `json:"id,string"`
	Amount uint64 `json:"amount,string"`
}

// QuoteReply - price of a number of shares
type QuoteReply struct {
	Price uint64 `json:"price,string"`
	Total uint64 `json:"total,string"`
}

// Quote - the cost of buying amount shares at the current price
func (property *Property) Quote(arguments *QuoteArguments, reply *QuoteReply) error {
	if err := ratelimit.Limit(property.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	return property.Handle.Query(func(l logic.Logic, reader storage.Reader) error {
		p, err := logic.PricingOf(l)
		if nil != err {
			return err
		}
		total, err := p.Quote(reader, arguments.ID, arguments.Amount)
		if nil != err {
			return err
		}
		reply.Price = p.SharePrice(reader, arguments.ID)
		reply.Total = total
		return nil
	})
}
