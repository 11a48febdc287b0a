package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/mdsite/internal/config"
)

var _ = Describe("Config", func() {
	Describe("DefaultConfig", func() {
		It("should describe a working docs to public build", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Input.Directory).To(Equal("docs"))
			Expect(cfg.Input.Include).To(ContainElements("*.md", "*.markdown"))
			Expect(cfg.Output.Directory).To(Equal("public"))
			Expect(cfg.Build.Workers).To(Equal(1))
			Expect(cfg.Logging.Level).To(Equal("info"))
			Expect(config.Validate(cfg)).To(Succeed())
		})
	})

	Describe("Load", func() {
		var dir string

		BeforeEach(func() {
			dir = GinkgoT().TempDir()
		})

		write := func(content string) string {
			path := filepath.Join(dir, "mdsite.yaml")
			Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
			return path
		}

		It("should overlay file values onto defaults", func() {
			path := write("input:\n  directory: content\noutput:\n  directory: dist\nbuild:\n  workers: 4\n")
			cfg, err := config.Load(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Input.Directory).To(Equal("content"))
			Expect(cfg.Output.Directory).To(Equal("dist"))
			Expect(cfg.Build.Workers).To(Equal(4))
			// untouched values keep their defaults
			Expect(cfg.Logging.Level).To(Equal("info"))
		})

		It("should fail on a missing file", func() {
			_, err := config.Load(filepath.Join(dir, "nope.yaml"))
			Expect(err).To(HaveOccurred())
		})

		It("should fail on invalid YAML", func() {
			path := write("input: [unclosed\n")
			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Validate", func() {
		var cfg *config.Config

		BeforeEach(func() {
			cfg = config.DefaultConfig()
		})

		It("should reject an empty source directory", func() {
			cfg.Input.Directory = ""
			Expect(config.Validate(cfg)).To(MatchError(ContainSubstring("input.directory")))
		})

		It("should reject empty include patterns", func() {
			cfg.Input.Include = nil
			Expect(config.Validate(cfg)).To(MatchError(ContainSubstring("input.include")))
		})

		It("should reject an empty output directory", func() {
			cfg.Output.Directory = ""
			Expect(config.Validate(cfg)).To(MatchError(ContainSubstring("output.directory")))
		})

		It("should reject both template modes at once", func() {
			cfg.Template.File = "page.html"
			cfg.Template.Directory = "templates"
			Expect(config.Validate(cfg)).To(MatchError(ContainSubstring("mutually exclusive")))
		})

		It("should reject zero workers", func() {
			cfg.Build.Workers = 0
			Expect(config.Validate(cfg)).To(MatchError(ContainSubstring("build.workers")))
		})

		It("should reject an unknown logging level", func() {
			cfg.Logging.Level = "loud"
			Expect(config.Validate(cfg)).To(MatchError(ContainSubstring("logging.level")))
		})
	})
})
