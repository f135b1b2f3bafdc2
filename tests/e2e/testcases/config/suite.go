// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/praxislabs/cli/tests/e2e/commands"
)

var _ = ginkgo.Describe("[Config]", func() {
	ginkgo.It("toggles metrics collection", func() {
		out, err := commands.ConfigMetrics("enable")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Thank you for opting in"))

		out, err = commands.ConfigMetrics("disable")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("no longer be collected"))
	})

	ginkgo.It("rejects unknown metrics arguments", func() {
		out, err := commands.ConfigMetrics("sometimes")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("invalid metrics argument"))
	})

	ginkgo.It("toggles the automated update check", func() {
		out, err := commands.ConfigUpdate("disable")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("no longer be performed"))

		out, err = commands.ConfigUpdate("enable")
		gomega.Expect(err).Should(gomega.BeNil(), out)
		gomega.Expect(out).Should(gomega.ContainSubstring("Thank you for opting in"))
	})
})
