// Copyright (C) 2024-2025, Praxis Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package engine

import (
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/praxislabs/cli/tests/e2e/commands"
)

var _ = ginkgo.Describe("[Engine]", func() {
	ginkgo.It("lists installed versions without failing on a fresh box", func() {
		out, err := commands.ListEngines()
		gomega.Expect(err).Should(gomega.BeNil(), out)
	})

	ginkgo.It("rejects a version that is not semver", func() {
		out, err := commands.InstallEngine("banana")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("must be a semantic version"))
	})

	ginkgo.It("refuses to pin a version that is not installed", func() {
		out, err := commands.UseEngine("v99.99.99")
		gomega.Expect(err).Should(gomega.HaveOccurred())
		gomega.Expect(out).Should(gomega.ContainSubstring("is not installed"))
	})
})
