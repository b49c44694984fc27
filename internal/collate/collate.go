// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package collate merges queued requests that share one logical identity
// into single effective requests before replay.
package collate

import (
	"context"
	"sort"

	"github.com/MKhiriev/go-local-sync/models"
)

// Collator folds a snapshot of the request queue into collated groups.
// Implementations must be pure: no store access, no side effects, identical
// output for identical input.
type Collator interface {
	// Collate groups requests by logical identity (method + target) and
	// merges each group into one effective request. requests must be
	// ordered by AddedAt ascending, the order ListPending returns.
	Collate(ctx context.Context, requests []models.QueuedRequest) ([]models.CollatedGroup, error)
}

// collator is the concrete implementation of Collator.
// It performs a purely in-memory fold over the queue snapshot; no storage
// layer or logger is required because the operation is stateless and
// produces no side effects.
type collator struct{}

// NewCollator constructs a Collator ready for use.
func NewCollator() Collator {
	return &collator{}
}

// Collate implements Collator.
//
// Requests are folded in encounter order. The first request of an identity
// seeds the merged request; every later request with the same identity
// overwrites all merged fields (last write wins) while the subsumed-sequence
// list accumulates each sequence seen. The merged AddedAt is deliberately
// NOT refreshed: it keeps the identity's earliest timestamp so that group
// ordering reflects when the identity was first touched, even though the
// replayed fields come from the latest request. Downstream ordering relies
// on this earliest-timestamp/latest-fields split.
//
// ctx cancellation is checked at the start of each iteration so that
// callers can abort early when folding large queues.
func (c *collator) Collate(ctx context.Context, requests []models.QueuedRequest) ([]models.CollatedGroup, error) {
	groups := make([]models.CollatedGroup, 0, len(requests))
	byIdentity := make(map[string]int, len(requests))

	for _, request := range requests {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		identity := request.Identity()
		index, seen := byIdentity[identity]
		if !seen {
			byIdentity[identity] = len(groups)
			groups = append(groups, models.CollatedGroup{
				Request:  request,
				Subsumed: []int64{request.Sequence},
			})
			continue
		}

		earliest := groups[index].Request.AddedAt
		groups[index].Request = request
		groups[index].Request.AddedAt = earliest
		groups[index].Subsumed = append(groups[index].Subsumed, request.Sequence)
	}

	// stable: groups with equal timestamps keep encounter order
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Request.AddedAt.Before(groups[j].Request.AddedAt)
	})

	return groups, nil
}
