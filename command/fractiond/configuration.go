// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/fractiond/fractiond/configuration"
	"github.com/fractiond/fractiond/network"
	"github.com/fractiond/fractiond/rpc/listeners"
)

// basic defaults (directories and files are relative to the "DataDirectory" from the configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultCustodyDatabase  = network.Custody + ".leveldb"
	defaultTestingDatabase  = network.Testing + ".leveldb"
	defaultLocalDatabase    = network.Local + ".leveldb"

	defaultCheckpointFile = "auctions.json"

	defaultLogDirectory = "log"
	defaultLogFile      = "fractiond.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultExchangeToken         = "USDT"
	defaultMinimumIncrementBps   = 500
	defaultMinimumFractionAmount = 1000
	defaultMaximumFractionAmount = 1000000000
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "critical",
}

// DatabaseType - where the custody registry and balances are stored
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// MintingType - fraction band for the minter
type MintingType struct {
	MinimumFractionAmount uint64 `gluamapper:"minimum_fraction_amount" json:"minimum_fraction_amount"`
	MaximumFractionAmount uint64 `gluamapper:"maximum_fraction_amount" json:"maximum_fraction_amount"`
}

// Configuration - the daemon configuration from the Lua file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Network       string       `gluamapper:"network" json:"network"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	CheckpointFile string `gluamapper:"checkpoint_file" json:"checkpoint_file"`

	ProtocolAccount     string `gluamapper:"protocol_account" json:"protocol_account"`
	ExchangeToken       string `gluamapper:"exchange_token" json:"exchange_token"`
	MinimumIncrementBps uint64 `gluamapper:"minimum_increment_bps" json:"minimum_increment_bps"`

	Minting   MintingType                `gluamapper:"minting" json:"minting"`
	ClientRPC listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Logging   logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Network:       network.Custody,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultCustodyDatabase,
		},

		CheckpointFile: defaultCheckpointFile,

		ExchangeToken:       defaultExchangeToken,
		MinimumIncrementBps: defaultMinimumIncrementBps,

		Minting: MintingType{
			MinimumFractionAmount: defaultMinimumFractionAmount,
			MaximumFractionAmount: defaultMaximumFractionAmount,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to the appropriate default, abort on unknown networks
	options.Network = strings.ToLower(options.Network)
	if !network.Valid(options.Network) {
		return nil, fmt.Errorf("network: %q is not supported", options.Network)
	}

	// if database was not changed from default
	if options.Database.Name == defaultCustodyDatabase {
		switch options.Network {
		case network.Custody:
			// already correct default
		case network.Testing:
			options.Database.Name = defaultTestingDatabase
		case network.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("network: %s no default database setting", options.Network)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.CheckpointFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f, err = configuration.EnsureAbsolute(options.DataDirectory, *f)
		if nil != err {
			return nil, err
		}
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f, err = configuration.EnsureAbsolute(options.DataDirectory, *f)
			if nil != err {
				return nil, err
			}
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain a path separator, then add the correct directory prefix
	mustNotBePaths := []struct {
		name      *string
		directory string
	}{
		{&options.Database.Name, options.Database.Directory},
		{&options.Logging.File, ""},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f.name) {
		case "", ".":
			if "" != f.directory {
				*f.name = filepath.Join(f.directory, *f.name)
			}
		default:
			return nil, fmt.Errorf("file: %q is not a plain file name", *f.name)
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = filepath.Clean(*d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}
