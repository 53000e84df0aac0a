// Package synth implements the Declaration Synthesizer of spec.md §4.3:
// given a dependency node and the class/global declaration it resolves to
// through internal/provider, it emits a syntactically valid stub
// declaration whose body throws (or, for parameters and constructor
// field assignment, defers to the synthetic default_factory helper).
package synth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/hackslice/internal/config"
	"github.com/anthropics/hackslice/internal/decltype"
	"github.com/anthropics/hackslice/internal/depnode"
	"github.com/anthropics/hackslice/internal/errs"
	"github.com/anthropics/hackslice/internal/initializer"
	"github.com/anthropics/hackslice/internal/provider"
)

// Synthesizer emits declaration text for dependency nodes. It holds no
// mutable state of its own; every method is a pure function of its
// arguments plus the injected collaborators.
type Synthesizer struct {
	Provider provider.DeclProvider
	Printer  provider.TypePrinter
	Cfg      config.SynthConfig
}

// New builds a Synthesizer.
func New(p provider.DeclProvider, printer provider.TypePrinter, cfg config.SynthConfig) *Synthesizer {
	return &Synthesizer{Provider: p, Printer: printer, Cfg: cfg}
}

// HelperDecl returns the single synthetic helper emitted once in the
// top-level file: "function default_factory(): nothing { throw new
// Exception(); }" (spec.md §4.3).
func (s *Synthesizer) HelperDecl() string {
	return fmt.Sprintf("function %s(): nothing { throw new %s(); }", s.Cfg.HelperName, s.Cfg.ExceptionClass)
}

func (s *Synthesizer) printType(t decltype.Type) (string, error) {
	text, err := s.Printer.FullDecl(t)
	if err != nil {
		return "", fmt.Errorf("printing type %s: %w", t.String(), err)
	}
	return text, nil
}

func (s *Synthesizer) throwBody() string {
	return "throw new " + s.Cfg.ExceptionClass + "();"
}

func typeParamsText(tp []string) string {
	if len(tp) == 0 {
		return ""
	}
	return "<" + strings.Join(tp, ", ") + ">"
}

func (s *Synthesizer) paramText(p provider.Param, withDefault bool) (string, error) {
	typ, err := s.printType(p.Type)
	if err != nil {
		return "", err
	}
	text := typ + " " + p.Name
	if p.InOut {
		text = "inout " + text
	}
	if withDefault {
		text += " = " + s.Cfg.HelperName + "()"
	}
	return text, nil
}

// signatureText renders the parameter list of sig, applying the
// minimum-arity rule: every parameter at or beyond sig.MinArity gets a
// "= default_factory()" default (spec.md §4.3).
func (s *Synthesizer) signatureText(sig provider.Signature) (string, error) {
	parts := make([]string, 0, len(sig.Params)+1)
	for i, p := range sig.Params {
		text, err := s.paramText(p, i >= sig.MinArity)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	if sig.Variadic != nil {
		typ, err := s.printType(sig.Variadic.Type)
		if err != nil {
			return "", err
		}
		parts = append(parts, typ+" ..."+sig.Variadic.Name)
	}
	return strings.Join(parts, ", "), nil
}

// returnSuffix renders ": RetType", or "" when the return type is the
// unknown/any kind (spec.md §4.3: "Omit return-type annotation when the
// return type is the unknown/any kind").
func (s *Synthesizer) returnSuffix(ret decltype.Type) (string, error) {
	if ret.Kind == decltype.KindMixedOrAny {
		return "", nil
	}
	typ, err := s.printType(ret)
	if err != nil {
		return "", err
	}
	return ": " + typ, nil
}

// SynthesizeGlobal emits the declaration for a global dependency node:
// Fun/FunName or GConst/GConstName.
func (s *Synthesizer) SynthesizeGlobal(n depnode.Node) (string, error) {
	switch n.Kind {
	case depnode.Fun, depnode.FunName:
		fd, ok := s.Provider.GetFun(n.Name)
		if !ok {
			return "", &errs.DependencyNotFound{Description: "function " + n.Name}
		}
		return s.function(fd.Name, fd.Signature)

	case depnode.GConst, depnode.GConstName:
		gd, ok := s.Provider.GetGConst(n.Name)
		if !ok {
			return "", &errs.DependencyNotFound{Description: "constant " + n.Name}
		}
		return s.globalConst(gd)

	case depnode.RecordDef:
		return "", errs.NewUnsupported("record definitions cannot be synthesized: " + n.Name)

	default:
		return "", errs.NewUnexpectedDependency("SynthesizeGlobal called on class-bound node " + n.String())
	}
}

func (s *Synthesizer) function(name string, sig provider.Signature) (string, error) {
	params, err := s.signatureText(sig)
	if err != nil {
		return "", err
	}
	ret, err := s.returnSuffix(sig.Return)
	if err != nil {
		return "", err
	}
	head := fmt.Sprintf("function %s%s(%s)%s", name, typeParamsText(sig.TypeParams), params, ret)
	return head + " { " + s.throwBody() + " }", nil
}

func (s *Synthesizer) globalConst(gd *provider.GConstDecl) (string, error) {
	typ, err := s.printType(gd.Type)
	if err != nil {
		return "", err
	}
	def, err := initializer.Default(gd.Type, s.Provider)
	if err != nil {
		return "", err
	}
	return "const " + typ + " " + gd.Name + " = " + def + ";", nil
}

// SynthesizeClass emits the full declaration for a class-name dependency:
// a class/interface/trait/abstract-class body assembled from members, an
// enum assembled from its collected constants, or a typedef when name
// does not resolve to a class at all (spec.md §4.3).
func (s *Synthesizer) SynthesizeClass(className string, members []depnode.Node) (string, error) {
	cls, ok := s.Provider.GetClass(className)
	if !ok {
		if td, ok := s.Provider.GetTypedef(className); ok {
			return s.typedefDecl(td)
		}
		return "", &errs.DependencyNotFound{Description: "class or typedef " + className}
	}
	if cls.Kind == provider.EnumKind {
		return s.enumDecl(cls, members)
	}
	return s.classDecl(cls, members)
}

func (s *Synthesizer) typedefDecl(td *provider.TypedefDecl) (string, error) {
	typ, err := s.printType(td.Target)
	if err != nil {
		return "", err
	}
	keyword := "newtype"
	if td.Transparent {
		keyword = "type"
	}
	return keyword + " " + td.Name + typeParamsText(td.TypeParams) + " = " + typ + ";", nil
}

func (s *Synthesizer) enumDecl(cls *provider.ClassDecl, members []depnode.Node) (string, error) {
	if cls.EnumBase == nil {
		return "", errs.NewUnexpectedDependency("enum " + cls.Name + " has no base type")
	}
	baseType, err := s.printType(*cls.EnumBase)
	if err != nil {
		return "", err
	}
	header := "enum " + cls.Name + ": " + baseType
	if cls.EnumConstraint != nil {
		constraint, err := s.printType(*cls.EnumConstraint)
		if err != nil {
			return "", err
		}
		header += " as " + constraint
	}

	names := make([]string, 0, len(members))
	for _, m := range members {
		if m.Kind == depnode.Const {
			names = append(names, m.Name)
		}
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString(" {")
	for _, name := range names {
		// Enum constant initializers use the base type's default, not
		// the enum type itself (spec.md §4.3).
		def, err := initializer.Default(*cls.EnumBase, s.Provider)
		if err != nil {
			return "", err
		}
		sb.WriteString("\n  " + name + " = " + def + ";")
	}
	sb.WriteString("\n}")
	return sb.String(), nil
}

func (s *Synthesizer) classDecl(cls *provider.ClassDecl, members []depnode.Node) (string, error) {
	sets := PartitionAncestors(cls, s.Provider)
	header, err := s.classHeader(cls, sets)
	if err != nil {
		return "", err
	}

	var bodyParts []string
	for _, m := range members {
		if m.Kind == depnode.Cstr {
			text, err := s.ctorDecl(cls, members)
			if err != nil {
				return "", err
			}
			bodyParts = append(bodyParts, text)
			continue
		}
		text, err := s.member(cls, m)
		if err != nil {
			return "", err
		}
		bodyParts = append(bodyParts, text)
	}
	sort.Strings(bodyParts)

	var sb strings.Builder
	sb.WriteString(header)
	for _, part := range bodyParts {
		sb.WriteString("\n  " + part)
	}
	sb.WriteString("\n}")
	return sb.String(), nil
}

func (s *Synthesizer) classHeader(cls *provider.ClassDecl, sets AncestorSets) (string, error) {
	kindWord := "class"
	abstractPrefix := ""
	switch cls.Kind {
	case provider.InterfaceKind:
		kindWord = "interface"
	case provider.TraitKind:
		kindWord = "trait"
	case provider.AbstractClass:
		abstractPrefix = "abstract "
	}

	var sb strings.Builder
	sb.WriteString(abstractPrefix + kindWord + " " + cls.Name + typeParamsText(cls.TypeParams))
	if len(sets.Extends) > 0 {
		sb.WriteString(" extends " + strings.Join(sets.Extends, ", "))
	}
	if len(sets.Implements) > 0 {
		sb.WriteString(" implements " + strings.Join(sets.Implements, ", "))
	}
	sb.WriteString(" {")
	for _, r := range sets.ReqExtends {
		sb.WriteString("\n  require extends " + r + ";")
	}
	for _, r := range sets.ReqImplements {
		sb.WriteString("\n  require implements " + r + ";")
	}
	for _, u := range sets.Uses {
		sb.WriteString("\n  use " + u + ";")
	}
	return sb.String(), nil
}

func (s *Synthesizer) member(cls *provider.ClassDecl, n depnode.Node) (string, error) {
	switch n.Kind {
	case depnode.Method:
		md, ok := cls.Methods[n.Name]
		if !ok {
			return "", errs.NewUnexpectedDependency("method " + n.Name + " not declared on class " + cls.Name)
		}
		return s.methodDecl(cls, &md, false)

	case depnode.SMethod:
		md, ok := cls.StaticMethods[n.Name]
		if !ok {
			return "", errs.NewUnexpectedDependency("static method " + n.Name + " not declared on class " + cls.Name)
		}
		return s.methodDecl(cls, &md, true)

	case depnode.Prop:
		pd, ok := cls.Properties[n.Name]
		if !ok {
			return "", errs.NewUnexpectedDependency("property " + n.Name + " not declared on class " + cls.Name)
		}
		return s.propDecl(&pd, false)

	case depnode.SProp:
		pd, ok := cls.StaticProperties[n.Name]
		if !ok {
			return "", errs.NewUnexpectedDependency("static property " + n.Name + " not declared on class " + cls.Name)
		}
		return s.propDecl(&pd, true)

	case depnode.Const:
		return s.constDecl(cls, n.Name)

	default:
		return "", errs.NewUnexpectedDependency("unexpected member kind in class body: " + n.String())
	}
}

func (s *Synthesizer) methodDecl(cls *provider.ClassDecl, md *provider.MethodDecl, static bool) (string, error) {
	isInterface := cls.Kind == provider.InterfaceKind
	noBody := md.Abstract || isInterface

	var keywords []string
	if md.Abstract && !isInterface {
		keywords = append(keywords, "abstract")
	}
	keywords = append(keywords, md.Visibility)
	if static {
		keywords = append(keywords, "static")
	}

	params, err := s.signatureText(md.Signature)
	if err != nil {
		return "", err
	}
	ret, err := s.returnSuffix(md.Signature.Return)
	if err != nil {
		return "", err
	}

	head := strings.Join(keywords, " ") + " function " + md.Name + typeParamsText(md.Signature.TypeParams) + "(" + params + ")" + ret
	if noBody {
		return head + ";", nil
	}
	return head + " { " + s.throwBody() + " }", nil
}

func (s *Synthesizer) propDecl(pd *provider.PropDecl, static bool) (string, error) {
	typ, err := s.printType(pd.Type)
	if err != nil {
		return "", err
	}
	keywords := []string{pd.Visibility}
	if static {
		keywords = append(keywords, "static")
	}
	text := strings.Join(keywords, " ") + " " + typ + " $" + pd.Name

	// Default initializers are emitted only for static, non-abstract
	// properties (spec.md §4.3).
	if static && !pd.Abstract {
		def, err := initializer.Default(pd.Type, s.Provider)
		if err != nil {
			return "", err
		}
		text += " = " + def
	}
	return text + ";", nil
}

func (s *Synthesizer) constDecl(cls *provider.ClassDecl, name string) (string, error) {
	if tc, ok := cls.TypeConsts[name]; ok {
		abstractWord := ""
		if tc.Abstract {
			abstractWord = "abstract "
		}
		text := abstractWord + "const type " + name
		if tc.Constraint != nil {
			c, err := s.printType(*tc.Constraint)
			if err != nil {
				return "", err
			}
			text += " as " + c
		}
		if tc.Assigned != nil {
			a, err := s.printType(*tc.Assigned)
			if err != nil {
				return "", err
			}
			text += " = " + a
		}
		return text + ";", nil
	}

	cd, ok := cls.Consts[name]
	if !ok {
		return "", errs.NewUnexpectedDependency("const " + name + " not declared on class " + cls.Name)
	}
	typ, err := s.printType(cd.Type)
	if err != nil {
		return "", err
	}
	if cd.Abstract {
		return "abstract const " + typ + " " + name + ";", nil
	}
	def, err := initializer.Default(cd.Type, s.Provider)
	if err != nil {
		return "", err
	}
	return "const " + typ + " " + name + " = " + def + ";", nil
}

// ctorDecl emits the owning class's constructor. If the class declares a
// constructor signature, that signature's parameter list is preserved;
// either way, every collected instance property gets an assignment from
// the synthetic default_factory helper (spec.md §4.3).
func (s *Synthesizer) ctorDecl(cls *provider.ClassDecl, members []depnode.Node) (string, error) {
	var propNames []string
	for _, m := range members {
		if m.Kind == depnode.Prop {
			propNames = append(propNames, m.Name)
		}
	}
	sort.Strings(propNames)

	assignments := make([]string, len(propNames))
	for i, name := range propNames {
		assignments[i] = "$this->" + name + " = " + s.Cfg.HelperName + "();"
	}
	body := strings.Join(assignments, " ")

	if cls.Constructor != nil {
		params, err := s.signatureText(cls.Constructor.Signature)
		if err != nil {
			return "", err
		}
		head := "public function __construct" + typeParamsText(cls.Constructor.Signature.TypeParams) + "(" + params + ")"
		return head + " { " + body + " }", nil
	}
	return "public function __construct() { " + body + " }", nil
}
