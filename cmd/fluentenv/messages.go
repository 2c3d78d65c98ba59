package main

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/csnover/fluent-ergonomics/fluent"
)

// englishCatalog is the built-in message catalog. Additional languages
// can be layered on top through the fallback chain.
const englishCatalog = `
app-tagline = Declarative development shells for Rust projects
help-version = Show version information
help-init = Write the default shell descriptor
help-eval = Evaluate the descriptor into a shell spec
help-activate = Generate shell activation code (bash, zsh, fish)
help-setup = Install shell integration into your rc file
help-inputs = Show how each build input is provided
help-platforms = List known platform identifiers
inputs-external = provided by the environment
eval-platform = Evaluating for platform {$id}
init-written = Wrote descriptor to {$path}
init-exists = Descriptor already exists at {$path}, use --force to overwrite
setup-dry-run = Dry run, no changes were made
setup-would-add = Would add activation to {$path}
setup-added = Added activation to {$path}
setup-present = Activation already present in {$path}
setup-backup = Backed up rc file to {$path}
setup-restart = Restart your shell or source the rc file to finish
platforms-detected = detected
`

var messages = loadMessages()

// loadMessages builds the translation chain for the process locale. The
// preferred language comes from LANG with American English as the
// fallback that always carries the full catalog.
func loadMessages() *fluent.Ergo {
	tags := []language.Tag{language.AmericanEnglish}
	if env := os.Getenv("LANG"); env != "" {
		base, _, _ := strings.Cut(env, ".")
		if tag, err := language.Parse(strings.ReplaceAll(base, "_", "-")); err == nil {
			tags = append([]language.Tag{tag}, tags...)
		}
	}

	ergo := fluent.New(tags...)
	if err := ergo.AddFromText(language.AmericanEnglish, englishCatalog); err != nil {
		// The embedded catalog is fixed at build time.
		panic(err)
	}
	return ergo
}

// tr translates a message identifier, falling back to the identifier
// itself so a missing entry never breaks command output.
func tr(msgid string, args fluent.Args) string {
	msg, err := messages.Tr(msgid, args)
	if err != nil {
		return msgid
	}
	return msg
}
