// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"os"
	"path/filepath"

	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/praxislabs/cli/tests/e2e/commands"
	"github.com/praxislabs/cli/tests/e2e/utils"
)

const profileName = "e2e-test-ledger"

var _ = ginkgo.Describe("[Ledger]", func() {
	ginkgo.BeforeEach(func() {
		err := utils.DeleteLedgerFile(profileName)
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.AfterEach(func() {
		err := utils.DeleteLedgerFile(profileName)
		gomega.Expect(err).Should(gomega.BeNil())
	})

	ginkgo.It("configures a profile and renders the connection doc", func() {
		out, err := commands.ConfigureLedger(profileName, "devnet")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("configured for devnet"))

		path, err := utils.LedgerFilePath(profileName)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(utils.FileExists(path)).Should(gomega.BeTrue())

		doc, err := commands.RenderLedger(profileName)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(doc).Should(gomega.ContainSubstring("ledger_apis:"))
		gomega.Expect(doc).Should(gomega.ContainSubstring("${LEDGER_ADDRESS:str:http://localhost:8545}"))
		gomega.Expect(doc).Should(gomega.ContainSubstring("${LEDGER_CHAIN_ID:int:1337}"))
		gomega.Expect(doc).Should(gomega.ContainSubstring("default_gas_price_strategy: eip1559"))
	})

	ginkgo.It("renders resolved values without placeholders", func() {
		out, err := commands.ConfigureLedger(profileName, "devnet")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		doc, err := commands.RenderLedger(profileName, "--resolved")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(doc).Should(gomega.ContainSubstring("address: http://localhost:8545"))
		gomega.Expect(doc).Should(gomega.ContainSubstring("chain_id: 1337"))
		gomega.Expect(doc).ShouldNot(gomega.ContainSubstring("${"))
	})

	ginkgo.It("renders the harness kwargs with strategy payloads", func() {
		out, err := commands.ConfigureLedger(profileName, "devnet")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		kwargs, err := commands.RenderLedger(profileName, "--format", "kwargs")
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(kwargs).Should(gomega.ContainSubstring("denom: wei"))
		gomega.Expect(kwargs).Should(gomega.ContainSubstring("gas_price_strategies:"))
		gomega.Expect(kwargs).Should(gomega.ContainSubstring("eip1559:"))
		gomega.Expect(kwargs).Should(gomega.ContainSubstring("gas_station:"))
		gomega.Expect(kwargs).Should(gomega.ContainSubstring("fee_history_blocks:"))
	})

	ginkgo.It("honors field overrides at configure time", func() {
		out, err := commands.ConfigureLedger(
			profileName,
			"testnet",
			"--address", "https://rpc.internal.example.com",
			"--chain-id", "11155111",
		)
		gomega.Expect(err).Should(gomega.BeNil(), out)

		describe, err := commands.DescribeLedger(profileName)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(describe).Should(gomega.ContainSubstring("https://rpc.internal.example.com"))
		gomega.Expect(describe).Should(gomega.ContainSubstring("11155111"))
	})

	ginkgo.It("lists user profiles next to the built-ins", func() {
		out, err := commands.ConfigureLedger(profileName, "devnet")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		list, err := commands.ListLedgers()
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(list).Should(gomega.ContainSubstring(profileName))
		gomega.Expect(list).Should(gomega.ContainSubstring("mainnet"))
		gomega.Expect(list).Should(gomega.ContainSubstring("builtin"))
		gomega.Expect(list).Should(gomega.ContainSubstring("user"))
	})

	ginkgo.It("deletes a user profile", func() {
		out, err := commands.ConfigureLedger(profileName, "devnet")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		out, err = commands.DeleteLedger(profileName)
		gomega.Expect(err).Should(gomega.BeNil(), out)

		path, err := utils.LedgerFilePath(profileName)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(utils.FileExists(path)).Should(gomega.BeFalse())
	})

	ginkgo.It("patches a packaged config with dotted-path overrides", func() {
		dir, err := os.MkdirTemp("", "praxis-e2e-override")
		gomega.Expect(err).Should(gomega.BeNil())
		ginkgo.DeferCleanup(func() {
			_ = os.RemoveAll(dir)
		})

		configPath := filepath.Join(dir, "agent.yaml")
		seed := []byte("config:\n  ledger_apis:\n    ethereum:\n      address: https://rpc.praxis.network\n      chain_id: 1\n")
		err = os.WriteFile(configPath, seed, 0o644)
		gomega.Expect(err).Should(gomega.BeNil())

		out, err := commands.OverrideConfig(configPath, []string{
			"config.ledger_apis.ethereum.address=http://localhost:8545",
			"config.ledger_apis.ethereum.chain_id=31337",
		}, "")
		gomega.Expect(err).Should(gomega.BeNil(), out)

		patched, err := os.ReadFile(configPath)
		gomega.Expect(err).Should(gomega.BeNil())
		gomega.Expect(string(patched)).Should(gomega.ContainSubstring("address: http://localhost:8545"))
		gomega.Expect(string(patched)).Should(gomega.ContainSubstring("chain_id: 31337"))
	})

	ginkgo.It("rejects invalid profile names", func() {
		out, err := commands.ConfigureLedger("Bad_Name", "devnet")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("invalid profile name"))
	})
})
