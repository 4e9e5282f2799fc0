// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"sort"
	"time"

	"github.com/fractiond/fractiond/constants"
	"github.com/fractiond/fractiond/fault"
	"github.com/fractiond/fractiond/fraction"
	"github.com/fractiond/fractiond/votes"
)

// serialised record
type savedRecord struct {
	Epoch             uint64             `json:"epoch"`
	AssetId           uint64             `json:"assetId"`
	Index             int                `json:"index"`
	State             State              `json:"state"`
	MaxBid            uint64             `json:"maxBid"`
	MaxBidder         string             `json:"maxBidder"`
	LockedFractions   uint64             `json:"lockedFractions"`
	LockedBidAmount   uint64             `json:"lockedBidAmount"`
	Timer             time.Time          `json:"timer"`
	TotalFractions    uint64             `json:"totalFractions"`
	Votes             votes.SavedTracker `json:"votes"`
	LockedProceeds    int64              `json:"lockedProceeds"`
	FinalLockedAmount uint64             `json:"finalLockedAmount"`
	FinalLockedSupply uint64             `json:"finalLockedSupply"`
}

// serialised epoch pool
type savedPool struct {
	Epoch              uint64               `json:"epoch"`
	NftCount           uint64               `json:"nftCount"`
	FractionsPerAsset  uint64               `json:"fractionsPerAsset"`
	UnrestrictedSupply uint64               `json:"unrestrictedSupply"`
	UnrestrictedAmount uint64               `json:"unrestrictedAmount"`
	LockedSupply       uint64               `json:"lockedSupply"`
	PendingSupply      uint64               `json:"pendingSupply"`
	ExitPrice          uint64               `json:"exitPrice"`
	UnlockThresholdBps uint64               `json:"unlockThresholdBps"`
	AuctionDuration    time.Duration        `json:"auctionDuration"`
	TopBidLockTime     time.Duration        `json:"topBidLockTime"`
	Ledger             fraction.SavedLedger `json:"ledger"`
}

// serialised engine state
type checkpointData struct {
	Version      int           `json:"version"`
	CurrentEpoch uint64        `json:"currentEpoch"`
	Pools        []savedPool   `json:"pools"`
	Records      []savedRecord `json:"records"`
}

const checkpointVersion = 1

// SaveToFile - checkpoint the whole engine state
//
// written to a temporary file first so a crash mid-write never
// corrupts the previous checkpoint
func SaveToFile() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	return saveLocked()
}

// caller must hold the engine lock
func saveLocked() error {
	data := checkpointData{
		Version:      checkpointVersion,
		CurrentEpoch: globalData.currentEpoch,
	}

	for _, pool := range globalData.epochs {
		data.Pools = append(data.Pools, savedPool{
			Epoch:              pool.epoch,
			NftCount:           pool.nftCount,
			FractionsPerAsset:  pool.fractionsPerAsset,
			UnrestrictedSupply: pool.unrestrictedSupply,
			UnrestrictedAmount: pool.unrestrictedAmount,
			LockedSupply:       pool.lockedSupply,
			PendingSupply:      pool.pendingSupply,
			ExitPrice:          pool.exitPrice,
			UnlockThresholdBps: pool.unlockThresholdBps,
			AuctionDuration:    pool.auctionDuration,
			TopBidLockTime:     pool.topBidLockTime,
			Ledger:             pool.ledger.Save(),
		})
	}
	sort.Slice(data.Pools, func(i, j int) bool {
		return data.Pools[i].Epoch < data.Pools[j].Epoch
	})

	for _, list := range globalData.records {
		for _, rec := range list {
			data.Records = append(data.Records, savedRecord{
				Epoch:             rec.Epoch,
				AssetId:           rec.AssetId,
				Index:             rec.Index,
				State:             rec.State,
				MaxBid:            rec.MaxBid,
				MaxBidder:         rec.MaxBidder,
				LockedFractions:   rec.LockedFractions,
				LockedBidAmount:   rec.LockedBidAmount,
				Timer:             rec.Timer,
				TotalFractions:    rec.TotalFractions,
				Votes:             rec.Votes.Save(),
				LockedProceeds:    rec.LockedProceeds,
				FinalLockedAmount: rec.FinalLockedAmount,
				FinalLockedSupply: rec.FinalLockedSupply,
			})
		}
	}
	sort.Slice(data.Records, func(i, j int) bool {
		if data.Records[i].AssetId != data.Records[j].AssetId {
			return data.Records[i].AssetId < data.Records[j].AssetId
		}
		return data.Records[i].Index < data.Records[j].Index
	})

	packed, err := json.Marshal(&data)
	if nil != err {
		return err
	}

	temporary := globalData.checkpointFile + ".new"
	err = ioutil.WriteFile(temporary, packed, 0600)
	if nil != err {
		return err
	}
	return os.Rename(temporary, globalData.checkpointFile)
}

// LoadFromFile - restore the engine state from a checkpoint
//
// a missing file is not an error, the engine simply starts empty
func LoadFromFile() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	packed, err := ioutil.ReadFile(globalData.checkpointFile)
	if os.IsNotExist(err) {
		globalData.log.Info("no checkpoint file, starting empty")
		return nil
	}
	if nil != err {
		return err
	}

	data := checkpointData{}
	err = json.Unmarshal(packed, &data)
	if nil != err {
		return err
	}

	globalData.currentEpoch = data.CurrentEpoch
	globalData.epochs = make(map[uint64]*epochPool)
	globalData.records = make(map[uint64][]*Record)

	for _, saved := range data.Pools {
		globalData.epochs[saved.Epoch] = &epochPool{
			epoch:              saved.Epoch,
			nftCount:           saved.NftCount,
			fractionsPerAsset:  saved.FractionsPerAsset,
			unrestrictedSupply: saved.UnrestrictedSupply,
			unrestrictedAmount: saved.UnrestrictedAmount,
			lockedSupply:       saved.LockedSupply,
			pendingSupply:      saved.PendingSupply,
			exitPrice:          saved.ExitPrice,
			unlockThresholdBps: saved.UnlockThresholdBps,
			auctionDuration:    saved.AuctionDuration,
			topBidLockTime:     saved.TopBidLockTime,
			ledger:             fraction.RestoreLedger(saved.Ledger),
		}
	}

	// records were saved in asset/index order
	for _, saved := range data.Records {
		rec := &Record{
			Epoch:             saved.Epoch,
			AssetId:           saved.AssetId,
			Index:             saved.Index,
			State:             saved.State,
			MaxBid:            saved.MaxBid,
			MaxBidder:         saved.MaxBidder,
			LockedFractions:   saved.LockedFractions,
			LockedBidAmount:   saved.LockedBidAmount,
			Timer:             saved.Timer,
			TotalFractions:    saved.TotalFractions,
			Votes:             votes.RestoreTracker(saved.Votes),
			LockedProceeds:    saved.LockedProceeds,
			FinalLockedAmount: saved.FinalLockedAmount,
			FinalLockedSupply: saved.FinalLockedSupply,
		}
		globalData.records[rec.AssetId] = append(globalData.records[rec.AssetId], rec)
	}

	globalData.log.Infof("checkpoint restored: epoch: %d pools: %d records: %d",
		data.CurrentEpoch, len(data.Pools), len(data.Records))
	return nil
}

// background loop writing periodic checkpoints
type checkpointSaver struct{}

// Run - the saver process
func (saver *checkpointSaver) Run(args interface{}, shutdown <-chan struct{}) {
	log := globalData.log

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(constants.CheckpointInterval):
			err := SaveToFile()
			if nil != err {
				log.Errorf("checkpoint error: %s", err)
			}
		}
	}
}
