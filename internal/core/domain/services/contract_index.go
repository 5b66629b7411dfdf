package services

import (
	"storefront/internal/core/domain/model/contract"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ContractIndex resolves which contract corresponds to an order. It is built
// once per operation from a contract snapshot and replaces the ad-hoc lookup
// maps the listing would otherwise keep in UI state.
//
// Resolution order:
//  1. the order's explicit contractID, when set and present in the snapshot
//  2. the email index, keyed by normalized client email
//  3. a linear scan over all contracts comparing normalized emails, covering
//     snapshots whose index was built from partial data
//
// A miss is a valid, expected outcome and returns nil, never an error: an
// unlinked order simply displays all its items and falls back to its own
// checklist.
type ContractIndex struct {
	all     []*contract.Contract
	byID    map[string]*contract.Contract
	byEmail map[string]*contract.Contract
}

// NewContractIndex builds an index over the given contract snapshot.
// When several contracts share a normalized client email, the first one wins.
func NewContractIndex(contracts []*contract.Contract) ContractIndex {
	idx := ContractIndex{
		all:     contracts,
		byID:    make(map[string]*contract.Contract, len(contracts)),
		byEmail: make(map[string]*contract.Contract, len(contracts)),
	}

	for _, c := range contracts {
		if c == nil {
			continue
		}
		idx.byID[c.ID().String()] = c

		email := kernel.NormalizeEmail(c.ClientEmail())
		if email == "" {
			continue
		}
		if _, exists := idx.byEmail[email]; !exists {
			idx.byEmail[email] = c
		}
	}

	return idx
}

// Resolve returns the contract linked to the order, or nil when none matches.
func (idx ContractIndex) Resolve(o *order.Order) *contract.Contract {
	if o == nil {
		return nil
	}

	if id := o.ContractID(); id != nil {
		if c, ok := idx.byID[id.String()]; ok {
			return c
		}
	}

	return idx.ResolveByEmail(o.CustomerEmail())
}

// ResolveByEmail returns the first contract whose normalized client email
// equals the normalized form of the given email, or nil when none matches or
// the email is empty.
func (idx ContractIndex) ResolveByEmail(email string) *contract.Contract {
	key := kernel.NormalizeEmail(email)
	if key == "" {
		return nil
	}

	if c, ok := idx.byEmail[key]; ok {
		return c
	}

	for _, c := range idx.all {
		if c != nil && kernel.NormalizeEmail(c.ClientEmail()) == key {
			return c
		}
	}
	return nil
}

// Contracts returns the underlying snapshot in index order.
func (idx ContractIndex) Contracts() []*contract.Contract {
	return idx.all
}
