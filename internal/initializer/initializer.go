// Package initializer implements the Initializer Generator of spec.md
// §4.2: given a declared type, it produces a syntactically valid default
// expression the host language's type-checker accepts as an instance of
// that type.
package initializer

import (
	"sort"
	"strings"

	"github.com/anthropics/hackslice/internal/decltype"
	"github.com/anthropics/hackslice/internal/errs"
	"github.com/anthropics/hackslice/internal/provider"
)

// reservedConstant is the host language's keyword for the special
// ::class constant, which is never a candidate representative value for
// the "treat a class type as an enum" rule.
const reservedConstant = "class"

// Default builds the default expression for t, per the table in
// spec.md §4.2.
func Default(t decltype.Type, p provider.DeclProvider) (string, error) {
	switch t.Kind {
	case decltype.KindNullable:
		return "null", nil

	case decltype.KindInt, decltype.KindFloat:
		if t.Kind == decltype.KindFloat {
			return "0.0", nil
		}
		return "0", nil

	case decltype.KindBool:
		return "false", nil

	case decltype.KindString, decltype.KindArraykey:
		return "\"\"", nil

	case decltype.KindBuiltinContainer:
		return t.Name + "[]", nil

	case decltype.KindCollectionClass:
		return t.Name + " {}", nil

	case decltype.KindPair:
		if len(t.Args) != 2 {
			return "", errs.NewUnexpectedDependency("Pair type without exactly two arguments")
		}
		first, err := Default(t.Args[0], p)
		if err != nil {
			return "", err
		}
		second, err := Default(t.Args[1], p)
		if err != nil {
			return "", err
		}
		return "Pair {" + first + ", " + second + "}", nil

	case decltype.KindClassname:
		if len(t.Args) != 1 {
			return "", errs.NewUnexpectedDependency("classname type without exactly one argument")
		}
		return t.Args[0].Name + "::class", nil

	case decltype.KindTuple:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			d, err := Default(a, p)
			if err != nil {
				return "", err
			}
			parts[i] = d
		}
		return "tuple(" + strings.Join(parts, ", ") + ")", nil

	case decltype.KindShape:
		return defaultShape(t, p)

	case decltype.KindNamed:
		return defaultNamed(t, p)

	case decltype.KindMixedOrAny:
		// mixed/dynamic/any accept null as a valid instance.
		return "null", nil

	case decltype.KindUnsupported:
		return "", errs.NewUnsupported("no default expression for " + t.String())

	default:
		return "", errs.NewUnsupported("no default expression for " + t.String())
	}
}

func defaultShape(t decltype.Type, p provider.DeclProvider) (string, error) {
	var parts []string
	for _, f := range t.Fields {
		if f.Optional {
			continue
		}
		d, err := Default(f.Type, p)
		if err != nil {
			return "", err
		}
		parts = append(parts, "'"+f.Name+"' => "+d)
	}
	if t.Open {
		parts = append(parts, "...")
	}
	return "shape(" + strings.Join(parts, ", ") + ")", nil
}

func defaultNamed(t decltype.Type, p provider.DeclProvider) (string, error) {
	if cls, ok := p.GetClass(t.Name); ok {
		constName, err := pickEnumConstant(cls)
		if err != nil {
			return "", err
		}
		return t.Name + "::" + constName, nil
	}
	if td, ok := p.GetTypedef(t.Name); ok {
		return Default(td.Target, p)
	}
	return "", &errs.DependencyNotFound{Description: "class or typedef " + t.Name}
}

// pickEnumConstant chooses a representative constant of cls other than
// the reserved "class" pseudo-constant. Order is cls.ConstOrder when
// present (the provider's declaration order), otherwise sorted keys, so
// the choice is deterministic even though spec.md §9 leaves it
// unspecified which one the source would pick.
func pickEnumConstant(cls *provider.ClassDecl) (string, error) {
	order := cls.ConstOrder
	if len(order) == 0 {
		order = make([]string, 0, len(cls.Consts))
		for name := range cls.Consts {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	for _, name := range order {
		if name == reservedConstant {
			continue
		}
		if _, ok := cls.Consts[name]; ok {
			return name, nil
		}
	}
	return "", errs.NewUnsupported("class " + cls.Name + " has no non-reserved constant to use as a default")
}
