// Package lsp serves completion over the Language Server Protocol.
package lsp

import (
	"sync"

	"github.com/spf13/afero"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/texlyzer/codebase"
	"github.com/dhamidi/texlyzer/completion"
	"github.com/dhamidi/texlyzer/config"
	"github.com/dhamidi/texlyzer/project"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "texlyzer"

var log = commonlog.GetLogger("texlyzer.lsp")

// TriggerCharacters start a completion request in the client.
var TriggerCharacters = []string{`\`, "{", ",", "/", "@"}

type Server struct {
	version string
	fs      afero.Fs
	lookup  func(string) (string, bool)

	handler protocol.Handler
	server  *server.Server

	mu       sync.RWMutex
	codebase *codebase.Codebase
	options  config.Options
	client   completion.ClientProfile
}

type Option func(*Server)

// WithFS replaces the operating system file system used for scanning the
// workspace, reading the options file and completing include paths.
func WithFS(fs afero.Fs) Option {
	return func(s *Server) { s.fs = fs }
}

// WithLookupEnv replaces os.LookupEnv for configuration overrides.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(s *Server) { s.lookup = lookup }
}

func NewServer(version string, opts ...Option) *Server {
	s := &Server{
		version: version,
		fs:      afero.NewOsFs(),
		options: config.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentCompletion: s.textDocumentCompletion,
		CompletionItemResolve:  s.completionItemResolve,
	}
	s.server = server.NewServer(&s.handler, lsName, false)
	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootURI != nil && *params.RootURI != "" {
		if path, err := codebase.URIToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	} else if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	}

	options, err := config.Load(s.fs, rootDir, s.lookup)
	if err != nil {
		log.Errorf("using default options: %s", err)
		options = config.Default()
	}

	s.mu.Lock()
	s.options = options
	s.client = clientProfile(params)
	s.codebase = codebase.New(rootDir, s.fs, options.SyntaxConfig())
	s.mu.Unlock()
	if params.ClientInfo != nil {
		log.Infof("initialized by %s for %s", params.ClientInfo.Name, rootDir)
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: TriggerCharacters,
		ResolveProvider:   boolPtr(true),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	cb := s.workspace()
	if cb == nil {
		return nil
	}
	if err := cb.ScanAll(); err != nil {
		log.Errorf("%s", err)
	}
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// workspace returns the document store, or nil before initialize.
func (s *Server) workspace() *codebase.Codebase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codebase
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	cb := s.workspace()
	if cb == nil {
		return nil
	}
	doc := params.TextDocument
	cb.Open(doc.URI, doc.LanguageID, doc.Text, int32(doc.Version))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	cb := s.workspace()
	if cb == nil {
		return nil
	}
	uri := params.TextDocument.URI
	doc := cb.Get(uri)
	if doc == nil {
		log.Warningf("change for unknown document %s", uri)
		return nil
	}
	text := doc.Text
	for _, change := range params.ContentChanges {
		text = applyChange(text, change)
	}
	cb.Change(uri, text, int32(params.TextDocument.Version))
	return nil
}

// applyChange returns text with one content change applied. Ranged changes
// are resolved against the text as it is before the change.
func applyChange(text string, change any) string {
	switch change := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return change.Text
	case protocol.TextDocumentContentChangeEvent:
		if change.Range == nil {
			return change.Text
		}
		lines := codebase.NewLineIndex(text)
		start := lines.Offset(int(change.Range.Start.Line), int(change.Range.Start.Character))
		end := lines.Offset(int(change.Range.End.Line), int(change.Range.End.Character))
		if end < start {
			start, end = end, start
		}
		return text[:start] + change.Text + text[end:]
	}
	return text
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	if cb := s.workspace(); cb != nil {
		cb.Close(params.TextDocument.URI)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	cb := s.workspace()
	if cb == nil || params.Text == nil {
		return nil
	}
	doc := cb.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}
	cb.Change(doc.URI, *params.Text, doc.Version)
	return nil
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	cb := s.workspace()
	if cb == nil {
		return nil, nil
	}
	doc := cb.Get(params.TextDocument.URI)
	if doc == nil {
		log.Warningf("completion for unknown document %s", params.TextDocument.URI)
		return nil, nil
	}

	s.mu.RLock()
	options, client := s.options, s.client
	s.mu.RUnlock()

	offset := doc.Lines.Offset(int(params.Position.Line), int(params.Position.Character))
	related := project.New(cb.RootDir(), cb.Documents()).Related(doc.URI)
	cc := completion.NewContext(doc, related, offset,
		completion.WithSyntax(cb.Syntax()),
		completion.WithFS(cb.FS()),
	)
	list := completion.Complete(cc, options.CompletionOptions(), client)
	log.Debugf("%d completions for %q in %s", len(list.Items), cc.Pattern, doc.URI)
	return completion.ToProtocol(doc, list, client), nil
}

func (s *Server) completionItemResolve(ctx *glsp.Context, params *protocol.CompletionItem) (*protocol.CompletionItem, error) {
	cb := s.workspace()
	if cb == nil {
		return params, nil
	}
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	return completion.Resolve(params, cb.Get, client)
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
