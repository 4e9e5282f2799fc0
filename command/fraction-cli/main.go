// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2021 Fractiond Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "fraction-cli"
	// app.Usage = ""
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "",
			Usage: "*fractiond host/IP and port, `HOST:PORT`",
		},
		cli.StringFlag{
			Name:  "privateKey, k",
			Value: "",
			Usage: " base58 private key `KEY` for signed commands",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, not stored anywhere",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "test, t",
					Usage: " generate a test network key pair",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "info",
			Usage:     "display the connected node status",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runInfo,
		},
		{
			Name:      "mint",
			Usage:     "deposit assets and mint a fraction epoch",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "assets, a",
					Value: "",
					Usage: "*asset ids to deposit, `N,N,…`",
				},
				cli.Uint64Flag{
					Name:  "fractions, f",
					Usage: "*fractions to mint per asset `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "exit-price, e",
					Usage: "*initial exit price per asset `PRICE`",
				},
				cli.Uint64Flag{
					Name:  "threshold, b",
					Usage: "*unlock threshold in basis points `BPS`",
				},
				cli.Uint64Flag{
					Name:  "duration, d",
					Usage: "*auction duration in `SECONDS`",
				},
				cli.Uint64Flag{
					Name:  "lock, l",
					Usage: "*top bid lock time in `SECONDS`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "mint-additional",
			Usage:     "mint extra fractions onto the current epoch",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*fractions to mint `COUNT`",
				},
			},
			Action: runMintAdditional,
		},
		{
			Name:      "mint-existing",
			Usage:     "fractionalise more assets at the established ratio",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "first, f",
					Usage: "*first asset id of the contiguous run `ID`",
				},
				cli.Uint64Flag{
					Name:  "length, n",
					Usage: "*number of assets in the run `COUNT`",
				},
			},
			Action: runMintExisting,
		},
		{
			Name:      "balance",
			Usage:     "fraction balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " account to query `ACCOUNT` [default: signing account]",
				},
				cli.Uint64Flag{
					Name:  "epoch, e",
					Usage: " epoch to query `EPOCH` [default: current]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "move fractions to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*account receiving the fractions `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "epoch, e",
					Usage: "*epoch of the fractions `EPOCH`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*fractions to move `COUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "start",
			Usage:     "open the buyout auction on an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
			},
			Action: runStart,
		},
		{
			Name:      "bid",
			Usage:     "place or raise a buyout bid",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*bid price `PRICE`",
				},
				cli.Uint64Flag{
					Name:  "fractions, f",
					Usage: " fractions pledged with the bid `COUNT`",
				},
			},
			Action: runBid,
		},
		{
			Name:      "remove-bid",
			Usage:     "withdraw a bid after its lock time",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
			},
			Action: runRemoveBid,
		},
		{
			Name:      "vote",
			Usage:     "lock fractions in favour of starting the auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*fractions to lock `COUNT`",
				},
			},
			Action: runVote,
		},
		{
			Name:      "remove-vote",
			Usage:     "unlock fractions while the auction has not started",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Usage: "*fractions to unlock `COUNT`",
				},
			},
			Action: runRemoveVote,
		},
		{
			Name:      "redeem",
			Usage:     "take custody of a won asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
			},
			Action: runRedeem,
		},
		{
			Name:      "claim",
			Usage:     "burn unrestricted fractions for a proceeds share",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "epoch, e",
					Usage: "*epoch of the fractions `EPOCH`",
				},
				cli.Uint64Flag{
					Name:  "fractions, f",
					Usage: "*fractions to burn `COUNT`",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "claim-locked",
			Usage:     "claim the vote-locked share of one auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
				cli.IntFlag{
					Name:  "index, i",
					Usage: "*index of the vote lock `N`",
				},
				cli.Uint64Flag{
					Name:  "fractions, f",
					Usage: " additional unrestricted fractions to burn `COUNT`",
				},
			},
			Action: runClaimLocked,
		},
		{
			Name:      "finalize-claim",
			Usage:     "settle an ended auction and claim in one call",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
				cli.Uint64Flag{
					Name:  "fractions, f",
					Usage: " fractions to burn `COUNT`",
				},
			},
			Action: runFinalizeClaim,
		},
		{
			Name:      "details",
			Usage:     "current auction state of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
			},
			Action: runDetails,
		},
		{
			Name:      "votes",
			Usage:     "vote-locked fractions of one holder on one asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "asset, a",
					Usage: "*asset id `ID`",
				},
				cli.StringFlag{
					Name:  "holder, o",
					Value: "",
					Usage: " account to query `ACCOUNT` [default: signing account]",
				},
			},
			Action: runVotes,
		},
		{
			Name:      "pool",
			Usage:     "pool counters of an epoch",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "epoch, e",
					Usage: " epoch to query `EPOCH` [default: current]",
				},
			},
			Action: runPool,
		},
		{
			Name:      "propose",
			Usage:     "open an exit price proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "epoch, e",
					Usage: "*epoch of the fractions `EPOCH`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*proposed exit price `PRICE`",
				},
				cli.Uint64Flag{
					Name:  "duration, d",
					Usage: "*voting window in `SECONDS`",
				},
			},
			Action: runPropose,
		},
		{
			Name:      "proposal-vote",
			Usage:     "add fraction-weighted support to a proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "proposal, p",
					Usage: "*proposal id `ID`",
				},
				cli.Uint64Flag{
					Name:  "weight, m",
					Usage: "*fraction weight to commit `COUNT`",
				},
			},
			Action: runProposalVote,
		},
		{
			Name:      "finalize",
			Usage:     "tally a proposal after its deadline",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "proposal, p",
					Usage: "*proposal id `ID`",
				},
			},
			Action: runFinalize,
		},
		{
			Name:      "oracle-price",
			Usage:     "submit an oracle exit price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "epoch, e",
					Usage: "*epoch of the fractions `EPOCH`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*exit price `PRICE`",
				},
			},
			Action: runOraclePrice,
		},
		{
			Name:  "version",
			Usage: "display this program version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		// to suppress the connection check for offline commands
		command := c.Args().Get(0)
		if "version" == command || "generate" == command {
			return nil
		}

		connect := c.GlobalString("connect")
		if "" == connect {
			return fmt.Errorf("connect is not set")
		}

		c.App.Metadata["config"] = &metadata{
			connect: connect,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
