// Package config loads the user options of the analyzer: the syntax
// extensions passed to the parser and the completion settings.
//
// Options are read from a YAML file in the workspace root and then
// overridden from the environment.
package config

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/texlyzer/completion"
	"github.com/dhamidi/texlyzer/latex/parser"
)

// FileName is the options file looked up in the workspace root.
const FileName = ".texlyzer.yaml"

// MaxLimit bounds the completion limit a user may configure.
const MaxLimit = 1000

type Completion struct {
	Matcher string `yaml:"matcher"`
	Limit   int    `yaml:"limit"`
}

// Syntax extends the built-in command and environment tables. Command
// names are given without the leading backslash.
type Syntax struct {
	MathEnvironments            []string          `yaml:"mathEnvironments"`
	EnumEnvironments            []string          `yaml:"enumEnvironments"`
	VerbatimEnvironments        []string          `yaml:"verbatimEnvironments"`
	CitationCommands            []string          `yaml:"citationCommands"`
	LabelDefinitionCommands     []string          `yaml:"labelDefinitionCommands"`
	LabelReferenceCommands      []string          `yaml:"labelReferenceCommands"`
	LabelReferenceRangeCommands []string          `yaml:"labelReferenceRangeCommands"`
	LabelDefinitionPrefixes     map[string]string `yaml:"labelDefinitionPrefixes"`
	LabelReferencePrefixes      map[string]string `yaml:"labelReferencePrefixes"`
}

type Options struct {
	Completion Completion `yaml:"completion"`
	Syntax     Syntax     `yaml:"syntax"`
}

// env holds the overrides read from the environment. Unset variables leave
// the fields nil.
type env struct {
	Matcher *string `envconfig:"TEXLYZER_COMPLETION_MATCHER"`
	Limit   *int    `envconfig:"TEXLYZER_COMPLETION_LIMIT"`
}

func Default() Options {
	return Options{
		Completion: Completion{
			Matcher: string(completion.MatchFuzzyIgnoreCase),
			Limit:   completion.DefaultLimit,
		},
	}
}

// Load reads FileName from dir, applies the environment overrides found by
// lookupEnv and validates the result. A missing file is not an error. A nil
// lookupEnv reads the process environment.
func Load(fsys afero.Fs, dir string, lookupEnv func(string) (string, bool)) (Options, error) {
	options := Default()
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	path := filepath.Join(dir, FileName)
	data, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return options, errors.Errorf("reading %s: %w", path, err)
	default:
		if err := options.decode(data); err != nil {
			return options, errors.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := options.applyEnv(lookupEnv); err != nil {
		return options, errors.Errorf("reading environment: %w", err)
	}
	if err := options.Validate(); err != nil {
		return options, err
	}
	return options, nil
}

// Parse decodes options from YAML on top of the defaults.
func Parse(data []byte) (Options, error) {
	options := Default()
	if err := options.decode(data); err != nil {
		return options, err
	}
	return options, options.Validate()
}

func (o *Options) decode(data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (o *Options) applyEnv(lookupEnv func(string) (string, bool)) error {
	var overrides env
	if err := envconfig.Process("", &overrides, lookupEnv); err != nil {
		return err
	}
	if overrides.Matcher != nil {
		o.Completion.Matcher = *overrides.Matcher
	}
	if overrides.Limit != nil {
		o.Completion.Limit = *overrides.Limit
	}
	return nil
}

// Validate reports every invalid option at once.
func (o Options) Validate() error {
	var err error
	if _, ok := completion.ParseMatcherKind(o.Completion.Matcher); !ok {
		err = multierr.Append(err, errors.Errorf("completion.matcher: unknown matcher %q, expected one of %v", o.Completion.Matcher, completion.MatcherKinds))
	}
	if o.Completion.Limit < 1 || o.Completion.Limit > MaxLimit {
		err = multierr.Append(err, errors.Errorf("completion.limit: %d is not between 1 and %d", o.Completion.Limit, MaxLimit))
	}
	for command, prefix := range o.Syntax.LabelDefinitionPrefixes {
		if command == "" || prefix == "" {
			err = multierr.Append(err, errors.Errorf("syntax.labelDefinitionPrefixes: empty entry %q: %q", command, prefix))
		}
	}
	for command, prefix := range o.Syntax.LabelReferencePrefixes {
		if command == "" || prefix == "" {
			err = multierr.Append(err, errors.Errorf("syntax.labelReferencePrefixes: empty entry %q: %q", command, prefix))
		}
	}
	if err != nil {
		return errors.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SyntaxConfig returns the default syntax configuration extended with the
// configured names.
func (o Options) SyntaxConfig() *parser.SyntaxConfig {
	config := parser.DefaultSyntaxConfig()
	s := o.Syntax
	config.MathEnvironments.Add(s.MathEnvironments...)
	config.EnumEnvironments.Add(s.EnumEnvironments...)
	config.VerbatimEnvironments.Add(s.VerbatimEnvironments...)
	config.CitationCommands.Add(s.CitationCommands...)
	config.LabelDefinitionCommands.Add(s.LabelDefinitionCommands...)
	config.LabelReferenceCommands.Add(s.LabelReferenceCommands...)
	config.LabelReferenceRangeCommands.Add(s.LabelReferenceRangeCommands...)
	for command, prefix := range s.LabelDefinitionPrefixes {
		config.LabelDefinitionPrefixes[command] = prefix
	}
	for command, prefix := range s.LabelReferencePrefixes {
		config.LabelReferencePrefixes[command] = prefix
	}
	return config
}

// CompletionOptions converts the validated completion settings.
func (o Options) CompletionOptions() completion.Options {
	kind, ok := completion.ParseMatcherKind(o.Completion.Matcher)
	if !ok {
		kind = completion.MatchFuzzyIgnoreCase
	}
	return completion.Options{Matcher: kind, Limit: o.Completion.Limit}
}
