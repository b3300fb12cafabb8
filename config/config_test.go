package config_test

import (
	"os"
	"path/filepath"

	"github.com/bfkit/bfrt/config"
	"github.com/bfkit/bfrt/program"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var configDir string

	BeforeEach(func() {
		var err error
		configDir, err = os.MkdirTemp("", "bfrt-config")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(configDir)).To(Succeed())
	})

	It("uses the built-in defaults without a file", func() {
		c, err := config.Load("")
		Expect(err).NotTo(HaveOccurred())

		defaults, err := c.Defaults()
		Expect(err).NotTo(HaveOccurred())
		Expect(defaults.TapeSize).To(Equal(1024))
		Expect(defaults.Overflow).To(Equal(program.OverflowWrap))
		Expect(defaults.Optimize).To(BeTrue())
	})

	It("reads overrides from a YAML file", func() {
		path := filepath.Join(configDir, "bfrt.yaml")
		Expect(os.WriteFile(path, []byte("tape-size: 64\nmemory-overflow: abort\noptimize: false\n"), 0666)).To(Succeed())

		c, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		defaults, err := c.Defaults()
		Expect(err).NotTo(HaveOccurred())
		Expect(defaults.TapeSize).To(Equal(64))
		Expect(defaults.Overflow).To(Equal(program.OverflowAbort))
		Expect(defaults.Optimize).To(BeFalse())
	})

	It("keeps defaults for values the file leaves unset", func() {
		path := filepath.Join(configDir, "bfrt.yaml")
		Expect(os.WriteFile(path, []byte("tape-size: 2048\n"), 0666)).To(Succeed())

		c, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		defaults, err := c.Defaults()
		Expect(err).NotTo(HaveOccurred())
		Expect(defaults.TapeSize).To(Equal(2048))
		Expect(defaults.Overflow).To(Equal(program.OverflowWrap))
		Expect(defaults.Optimize).To(BeTrue())
	})

	It("errors when the file does not exist", func() {
		_, err := config.Load(filepath.Join(configDir, "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-positive tape size", func() {
		path := filepath.Join(configDir, "bfrt.yaml")
		Expect(os.WriteFile(path, []byte("tape-size: 0\n"), 0666)).To(Succeed())

		c, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		_, err = c.Defaults()
		Expect(err).To(MatchError(&config.InvalidTapeSizeError{Size: 0}))
	})

	It("rejects an unknown overflow mode", func() {
		path := filepath.Join(configDir, "bfrt.yaml")
		Expect(os.WriteFile(path, []byte("memory-overflow: sideways\n"), 0666)).To(Succeed())

		c, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		_, err = c.Defaults()
		Expect(err).To(MatchError(&program.UnknownOverflowModeError{Mode: "sideways"}))
	})
})
