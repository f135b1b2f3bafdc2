// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/praxislabs/cli/pkg/constants"
	"github.com/praxislabs/cli/pkg/ledger"
	"github.com/praxislabs/cli/pkg/utils"
)

// Service probes ledger profile endpoints.
type Service struct {
	concurrencyLimit int64
	timeout          time.Duration
}

func NewService() *Service {
	return &Service{
		concurrencyLimit: constants.MaxConcurrentProbes,
		timeout:          constants.ProbeRequestTimeout,
	}
}

// CheckProfiles probes every profile's endpoint concurrently. Probe
// failures are recorded per profile and never fail the whole run.
func (s *Service) CheckProfiles(ctx context.Context, profiles []ledger.Profile) (*Report, error) {
	startTime := time.Now()

	sem := semaphore.NewWeighted(s.concurrencyLimit)
	errGroup, ctx := errgroup.WithContext(ctx)

	report := &Report{
		Profiles: make([]ProfileStatus, len(profiles)),
	}

	for i, profile := range profiles {
		errGroup.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			report.Profiles[i] = s.probeProfile(ctx, profile)
			return nil
		})
	}

	// the only group errors are semaphore acquires cut short by ctx
	if err := errGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to probe profiles: %w", err)
	}

	report.Timestamp = time.Now()
	report.DurationMS = int(time.Since(startTime).Milliseconds())
	return report, nil
}

// probeProfile checks one endpoint: block number for liveness and
// height, chain id for mismatch detection.
func (s *Service) probeProfile(ctx context.Context, profile ledger.Profile) ProfileStatus {
	result := ProfileStatus{
		Profile:  profile.Name,
		Network:  profile.Network,
		Endpoint: profile.Address,
	}

	startTime := time.Now()

	client, err := utils.NewEVMClientWithTimeout(profile.Address, s.timeout)
	if err != nil {
		result.LatencyMS = int(time.Since(startTime).Milliseconds())
		result.LastError = err.Error()
		return result
	}
	defer client.Close()

	height, err := client.BlockNumber(ctx)
	result.LatencyMS = int(time.Since(startTime).Milliseconds())
	if err != nil {
		result.LastError = err.Error()
		return result
	}

	result.Reachable = true
	result.Height = height

	chainID, err := client.ChainID(ctx)
	if err != nil {
		result.LastError = fmt.Sprintf("chain id lookup failed: %v", err)
		return result
	}
	result.ChainID = chainID.Uint64()
	result.ChainIDMismatch = chainID.Int64() != profile.ChainID

	return result
}
