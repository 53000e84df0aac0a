// Package slicer is the top-level orchestrator: given raw entry-point
// text, it drives internal/collector, internal/synth, and internal/layout
// in sequence and produces the single result string spec.md §6 describes,
// translating every failure at the boundary via internal/errs.Translate.
package slicer

import (
	"strings"

	"github.com/anthropics/hackslice/internal/collector"
	"github.com/anthropics/hackslice/internal/config"
	"github.com/anthropics/hackslice/internal/depgraph"
	"github.com/anthropics/hackslice/internal/depnode"
	"github.com/anthropics/hackslice/internal/errs"
	"github.com/anthropics/hackslice/internal/layout"
	"github.com/anthropics/hackslice/internal/provider"
	"github.com/anthropics/hackslice/internal/synth"
)

// Slicer wires the collaborators spec.md §6 lists as "consumed from
// collaborators" into the full extraction pipeline.
type Slicer struct {
	Provider  provider.DeclProvider
	Checker   provider.TypeChecker
	Printer   provider.TypePrinter
	Reader    provider.SourceReader
	Formatter provider.Formatter
	Cfg       config.Config
	// Graph, if non-nil, is handed to the collector so every extraction
	// records its own explain-path edges.
	Graph *depgraph.Graph
}

// New builds a Slicer from its collaborators and config.
func New(p provider.DeclProvider, tc provider.TypeChecker, printer provider.TypePrinter, reader provider.SourceReader, fmtr provider.Formatter, cfg config.Config) *Slicer {
	return &Slicer{Provider: p, Checker: tc, Printer: printer, Reader: reader, Formatter: fmtr, Cfg: cfg}
}

// Extract runs the full pipeline for raw entry-point text and returns the
// user-visible result: either the extracted slice or one of spec.md §6's
// diagnostic strings. It never returns a Go error — that's the point of
// the boundary translation.
func (s *Slicer) Extract(raw string) string {
	entry, err := depnode.ParseEntry(raw)
	if err != nil {
		return errs.Translate(err)
	}
	text, err := s.extract(entry)
	if err != nil {
		return errs.Translate(err)
	}
	return text
}

func (s *Slicer) extract(entry depnode.Entry) (string, error) {
	coll := collector.New(s.Provider, s.Checker, s.Cfg)
	coll.Graph = s.Graph
	result, err := coll.Collect(entry)
	if err != nil {
		return "", err
	}

	synthesizer := synth.New(s.Provider, s.Printer, s.Cfg.Synth)

	decls := make(layout.DeclTable)
	var names []string

	for _, g := range result.Globals {
		text, err := synthesizer.SynthesizeGlobal(g)
		if err != nil {
			return "", err
		}
		name, err := depnode.GlobalName(g)
		if err != nil {
			return "", err
		}
		decls[name] = text
		names = append(names, name)
	}

	for className, members := range result.Types {
		text, err := synthesizer.SynthesizeClass(className, members)
		if err != nil {
			return "", err
		}
		decls[className] = text
		names = append(names, className)
	}

	if err := s.spliceEntry(entry, synthesizer, decls, &names); err != nil {
		return "", err
	}

	return layout.Emit(names, decls, synthesizer.HelperDecl(), s.Cfg.Builtin.RootNamespace, s.Cfg.Layout, s.Formatter)
}

// spliceEntry inlines the entry point's own literal body into decls,
// implementing spec.md §5's "the entry point's literal body appears
// exactly once in the output": a function is inserted under its own
// fully qualified name; a method's literal text is woven into its
// owning class's synthesized body, creating an empty class shell first
// if the class had no other collected members.
func (s *Slicer) spliceEntry(entry depnode.Entry, synthesizer *synth.Synthesizer, decls layout.DeclTable, names *[]string) error {
	switch entry.Kind {
	case depnode.EntryFunction:
		fd, ok := s.Provider.GetFun(entry.Name)
		if !ok {
			return &errs.NotFound{Entry: entry.Name}
		}
		text, err := s.Reader.TextAt(fd.File, fd.Span)
		if err != nil {
			return err
		}
		decls[entry.Name] = text
		*names = append(*names, entry.Name)
		return nil

	case depnode.EntryMethod:
		cls, ok := s.Provider.GetClass(entry.Class)
		if !ok {
			return &errs.NotFound{Entry: entry.Class}
		}
		var span provider.Span
		if md, ok := cls.Methods[entry.Method]; ok {
			span = md.Span
		} else if md, ok := cls.StaticMethods[entry.Method]; ok {
			span = md.Span
		} else {
			return &errs.NotFound{Entry: entry.Class + "::" + entry.Method}
		}
		text, err := s.Reader.TextAt(cls.File, span)
		if err != nil {
			return err
		}

		classText, ok := decls[entry.Class]
		if !ok {
			shell, err := synthesizer.SynthesizeClass(entry.Class, nil)
			if err != nil {
				return err
			}
			classText = shell
			*names = append(*names, entry.Class)
		}
		decls[entry.Class] = spliceIntoClassBody(classText, text)
		return nil

	default:
		return &errs.InvalidInput{Got: "entry point is neither a function nor a method"}
	}
}

// spliceIntoClassBody inserts memberText as one more member of classText,
// a class/interface/trait/enum declaration that internal/synth always
// closes with a trailing "}" on its own line.
func spliceIntoClassBody(classText, memberText string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(classText, "\n"), "}")
	return trimmed + "\n  " + memberText + "\n}"
}
