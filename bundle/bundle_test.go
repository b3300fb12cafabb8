package bundle_test

import (
	"os"
	"path/filepath"

	"github.com/bfkit/bfrt/bundle"
	"github.com/bfkit/bfrt/program"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Load", func() {
	var (
		logger    *logrus.Entry
		loader    bundle.Loader
		defaults  bundle.Defaults
		bundleDir string
	)

	writeFile := func(name, content string) string {
		GinkgoHelper()
		path := filepath.Join(bundleDir, name)
		Expect(os.WriteFile(path, []byte(content), 0666)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		logger = logrus.WithField("suite", "bundle")
		loader = bundle.Loader{}
		defaults = bundle.Defaults{
			TapeSize: 1024,
			Overflow: program.OverflowWrap,
			Optimize: true,
		}

		var err error
		bundleDir, err = os.MkdirTemp("", "bfrt-bundle")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(bundleDir)).To(Succeed())
	})

	Context("when the path is a source file", func() {
		It("loads it with the defaults", func() {
			path := writeFile("prog.bf", "+++.")

			prog, err := loader.Load(logger, path, defaults)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Source).To(Equal([]byte("+++.")))
			Expect(prog.TapeSize).To(Equal(1024))
			Expect(prog.Overflow).To(Equal(program.OverflowWrap))
			Expect(prog.Optimize).To(BeTrue())
		})
	})

	Context("when the path does not exist", func() {
		It("errors", func() {
			_, err := loader.Load(logger, filepath.Join(bundleDir, "nope"), defaults)
			Expect(err).To(MatchError(&bundle.MissingBundleError{BundlePath: filepath.Join(bundleDir, "nope")}))
		})
	})

	Context("when the path is a bundle directory", func() {
		It("applies the manifest over the defaults", func() {
			writeFile("prog.bf", ",.")
			writeFile("program.json", `{
				"version": "1.0.0",
				"program": "prog.bf",
				"tapeSize": 64,
				"memoryOverflow": "abort",
				"optimize": false
			}`)

			prog, err := loader.Load(logger, bundleDir, defaults)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Source).To(Equal([]byte(",.")))
			Expect(prog.TapeSize).To(Equal(64))
			Expect(prog.Overflow).To(Equal(program.OverflowAbort))
			Expect(prog.Optimize).To(BeFalse())
		})

		It("keeps the defaults for unset manifest fields", func() {
			writeFile("prog.bf", "+")
			writeFile("program.json", `{"version": "1.2.3", "program": "prog.bf"}`)

			prog, err := loader.Load(logger, bundleDir, defaults)
			Expect(err).NotTo(HaveOccurred())
			Expect(prog.TapeSize).To(Equal(1024))
			Expect(prog.Overflow).To(Equal(program.OverflowWrap))
			Expect(prog.Optimize).To(BeTrue())
		})

		It("errors when the manifest is missing", func() {
			_, err := loader.Load(logger, bundleDir, defaults)
			Expect(err).To(MatchError(&bundle.MissingManifestError{BundlePath: bundleDir}))
		})

		It("errors when the manifest is not valid JSON", func() {
			writeFile("program.json", "{")

			_, err := loader.Load(logger, bundleDir, defaults)
			Expect(err).To(BeAssignableToTypeOf(&bundle.ManifestInvalidJSONError{}))
		})

		It("errors when the manifest is not UTF-8", func() {
			Expect(os.WriteFile(filepath.Join(bundleDir, "program.json"), []byte{0xff, 0xfe}, 0666)).To(Succeed())

			_, err := loader.Load(logger, bundleDir, defaults)
			Expect(err).To(MatchError(&bundle.ManifestInvalidEncodingError{BundlePath: bundleDir}))
		})

		It("errors when the program file is missing", func() {
			writeFile("program.json", `{"version": "1.0.0", "program": "gone.bf"}`)

			_, err := loader.Load(logger, bundleDir, defaults)
			Expect(err).To(MatchError(&bundle.MissingProgramError{BundlePath: bundleDir, Program: "gone.bf"}))
		})

		Context("when the manifest fails validation", func() {
			It("rejects an invalid version", func() {
				writeFile("prog.bf", "+")
				writeFile("program.json", `{"version": "banana", "program": "prog.bf"}`)

				_, err := loader.Load(logger, bundleDir, defaults)
				verr, ok := err.(*bundle.ManifestValidationError)
				Expect(ok).To(BeTrue())
				Expect(verr.ErrorMessages).To(ConsistOf(ContainSubstring("not a valid SemVer")))
			})

			It("rejects an unsupported major version", func() {
				writeFile("prog.bf", "+")
				writeFile("program.json", `{"version": "2.0.0", "program": "prog.bf"}`)

				_, err := loader.Load(logger, bundleDir, defaults)
				verr, ok := err.(*bundle.ManifestValidationError)
				Expect(ok).To(BeTrue())
				Expect(verr.ErrorMessages).To(ConsistOf(ContainSubstring("only handles version 1.*")))
			})

			It("reports every problem at once", func() {
				writeFile("program.json", `{
					"version": "2.0.0",
					"tapeSize": -1,
					"memoryOverflow": "sideways"
				}`)

				_, err := loader.Load(logger, bundleDir, defaults)
				verr, ok := err.(*bundle.ManifestValidationError)
				Expect(ok).To(BeTrue())
				Expect(verr.ErrorMessages).To(ConsistOf(
					ContainSubstring("only handles version 1.*"),
					ContainSubstring("program must not be empty"),
					ContainSubstring("tapeSize -1 must be positive"),
					ContainSubstring("unknown memory overflow mode"),
				))
			})
		})
	})
})
