// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/asset"
	"github.com/fractiond/fractiond/auction"
	"github.com/fractiond/fractiond/custodian"
	"github.com/fractiond/fractiond/exitprice"
	"github.com/fractiond/fractiond/minter"
	"github.com/fractiond/fractiond/mode"
	"github.com/fractiond/fractiond/oracle"
	"github.com/fractiond/fractiond/payment"
	"github.com/fractiond/fractiond/rpc"
	"github.com/fractiond/fractiond/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// set the initial system mode - before any background tasks are started
	err = mode.Initialise(theConfiguration.Network)
	if nil != err {
		log.Criticalf("mode initialise error: %s", err)
		exitwithstatus.Message("mode initialise error: %s", err)
	}
	defer mode.Finalise()

	// general info
	log.Infof("test mode: %v", mode.IsTesting())
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// custody registry
	log.Info("initialise asset")
	err = asset.Initialise(theConfiguration.ProtocolAccount)
	if nil != err {
		log.Criticalf("asset initialise error: %s", err)
		exitwithstatus.Message("asset initialise error: %s", err)
	}
	defer asset.Finalise()

	// vault escrow/debt accounts
	log.Info("initialise custodian")
	err = custodian.Initialise()
	if nil != err {
		log.Criticalf("custodian initialise error: %s", err)
		exitwithstatus.Message("custodian initialise error: %s", err)
	}
	defer custodian.Finalise()

	// exchange token balances
	log.Info("initialise payment")
	err = payment.Initialise(theConfiguration.ExchangeToken)
	if nil != err {
		log.Criticalf("payment initialise error: %s", err)
		exitwithstatus.Message("payment initialise error: %s", err)
	}
	defer payment.Finalise()

	// oracle registry
	log.Info("initialise oracle")
	err = oracle.Initialise(theConfiguration.ProtocolAccount)
	if nil != err {
		log.Criticalf("oracle initialise error: %s", err)
		exitwithstatus.Message("oracle initialise error: %s", err)
	}
	defer oracle.Finalise()

	// the auction engine
	log.Info("initialise auction")
	err = auction.Initialise(
		auction.Handles{
			Vault:    custodian.Get(),
			Payments: payment.Get(),
			TransferAsset: func(assetId uint64, to string) error {
				owner, err := asset.OwnerOf(assetId)
				if nil != err {
					return err
				}
				return asset.Transfer(assetId, owner, to)
			},
			SetFractionalised: asset.SetFractionalised,
		},
		auction.Parameters{
			ExchangeToken:       theConfiguration.ExchangeToken,
			MinimumIncrementBps: theConfiguration.MinimumIncrementBps,
			CheckpointFile:      theConfiguration.CheckpointFile,
		},
	)
	if nil != err {
		log.Criticalf("auction initialise error: %s", err)
		exitwithstatus.Message("auction initialise error: %s", err)
	}
	defer auction.Finalise()

	// restore any previously saved auction state
	// before any client services are started
	err = auction.LoadFromFile()
	if nil != err && !os.IsNotExist(err) {
		log.Criticalf("auction reload error: %s", err)
		exitwithstatus.Message("auction reload error: %s", err)
	}

	log.Info("initialise minter")
	err = minter.Initialise(auction.Get(), minter.Configuration{
		MinimumFractionAmount: theConfiguration.Minting.MinimumFractionAmount,
		MaximumFractionAmount: theConfiguration.Minting.MaximumFractionAmount,
		ProtocolAccount:       theConfiguration.ProtocolAccount,
	})
	if nil != err {
		log.Criticalf("minter initialise error: %s", err)
		exitwithstatus.Message("minter initialise error: %s", err)
	}
	defer minter.Finalise()

	log.Info("initialise exitprice")
	err = exitprice.Initialise(auction.Get(), oracle.IsApproved)
	if nil != err {
		log.Criticalf("exitprice initialise error: %s", err)
		exitwithstatus.Message("exitprice initialise error: %s", err)
	}
	defer exitprice.Finalise()

	// start up the rpc listeners
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// all subsystems are restored and running
	mode.Set(mode.Normal)

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
	mode.Set(mode.Stopped)
}
