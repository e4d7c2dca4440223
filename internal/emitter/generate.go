package emitter

import (
	"path/filepath"
	"strings"

	"github.com/uysalibov/ibORB/internal/idlast"
)

// Result holds the generated file contents for one translation unit.
type Result struct {
	HeaderName    string
	HeaderContent string
	SourceName    string
	SourceContent string
}

// Generator renders a TranslationUnit into C++ header/source text. Where
// the reference implementation dispatches through an ASTVisitor, Generate
// walks the tree with a plain type switch — idlast's Definition and Type
// are closed sums, so a switch is exhaustive and needs no double dispatch.
type Generator struct {
	cfg Config

	header *writer
	source *writer

	namespaces []string
}

// New creates a Generator using cfg.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate renders unit and returns the header/source text. baseName is
// the translation unit's filename stem, used for the include guard and
// output filenames.
func (g *Generator) Generate(unit *idlast.TranslationUnit) Result {
	g.header = newWriter(g.cfg.Indent)
	g.source = newWriter(g.cfg.Indent)
	g.namespaces = nil

	baseName := stem(unit.Filename)

	if g.cfg.AddIncludeGuards {
		guard := makeIncludeGuard(g.cfg.NamespacePrefix, baseName)
		g.header.line("#ifndef " + guard)
		g.header.line("#define " + guard)
		g.header.blank()
	}

	g.generateIncludes()
	g.header.blank()

	for _, def := range unit.Definitions {
		g.emitDefinition(def)
	}

	if g.cfg.AddIncludeGuards {
		g.header.blank()
		g.header.line("#endif // Include guard")
	}

	res := Result{
		HeaderName:    baseName + g.cfg.HeaderExtension,
		HeaderContent: g.header.String(),
	}
	if g.cfg.GenerateImplementation && strings.TrimSpace(g.source.String()) != "" {
		res.SourceName = baseName + g.cfg.SourceExtension
		res.SourceContent = g.source.String()
	}
	return res
}

func stem(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

func (g *Generator) generateIncludes() {
	for _, inc := range []string{"cstdint", "string", "vector", "array", "memory", "stdexcept", "any"} {
		g.header.line("#include <" + inc + ">")
	}
}

func (g *Generator) emitDefinition(def idlast.Definition) {
	switch n := def.(type) {
	case *idlast.Module:
		g.emitModule(n)
	case *idlast.Interface:
		g.emitInterface(n)
	case *idlast.Struct:
		g.emitStruct(n)
	case *idlast.Typedef:
		g.emitTypedef(n)
	case *idlast.Enum:
		g.emitEnum(n)
	case *idlast.Const:
		g.emitConst(n)
	case *idlast.Exception:
		g.emitException(n)
	case *idlast.Union:
		g.emitUnion(n)
	}
}

func (g *Generator) generateNamespaceBegin(name string) {
	g.header.blank()
	g.header.line("namespace " + name + " {")
	g.header.blank()
	g.namespaces = append(g.namespaces, name)

	if g.cfg.GenerateImplementation {
		g.source.blank()
		g.source.line("namespace " + name + " {")
		g.source.blank()
	}
}

func (g *Generator) generateNamespaceEnd() {
	if len(g.namespaces) == 0 {
		return
	}
	top := g.namespaces[len(g.namespaces)-1]
	g.header.blank()
	g.header.line("} // namespace " + top)

	if g.cfg.GenerateImplementation {
		g.source.blank()
		g.source.line("} // namespace " + top)
	}

	g.namespaces = g.namespaces[:len(g.namespaces)-1]
}

func (g *Generator) emitModule(n *idlast.Module) {
	g.generateNamespaceBegin(n.Name)
	for _, def := range n.Definitions {
		g.emitDefinition(def)
	}
	g.generateNamespaceEnd()
}

func (g *Generator) doxygen(w *writer, lines ...string) {
	if !g.cfg.AddDoxygen {
		return
	}
	w.line("/**")
	for _, l := range lines {
		w.line(" * " + l)
	}
	w.line(" */")
}

func (g *Generator) emitStruct(n *idlast.Struct) {
	g.doxygen(g.header, "@brief IDL struct "+n.Name)
	g.header.line("struct " + n.Name + " {")
	g.header.push()

	for _, m := range n.Members {
		g.header.line(mapType(m.Type) + " " + sanitizeIdentifier(m.Name) + ";")
	}

	g.header.blank()
	g.header.line("bool operator==(const " + n.Name + "& other) const {")
	g.header.push()
	if len(n.Members) == 0 {
		g.header.line("(void)other;")
		g.header.line("return true;")
	} else {
		var comparison strings.Builder
		for i, m := range n.Members {
			if i > 0 {
				comparison.WriteString(" && ")
			}
			comparison.WriteString(m.Name + " == other." + m.Name)
		}
		g.header.line("return " + comparison.String() + ";")
	}
	g.header.pop()
	g.header.line("}")

	g.header.blank()
	g.header.line("bool operator!=(const " + n.Name + "& other) const {")
	g.header.push()
	g.header.line("return !(*this == other);")
	g.header.pop()
	g.header.line("}")

	g.header.pop()
	g.header.line("};")
	g.header.blank()
}

func (g *Generator) emitInterface(n *idlast.Interface) {
	if n.IsForward {
		g.header.line("class " + n.Name + ";")
		g.header.blank()
		return
	}

	var doc []string
	doc = append(doc, "@brief IDL interface "+n.Name)
	if n.IsAbstract {
		doc = append(doc, "@note This is an abstract interface")
	}
	g.doxygen(g.header, doc...)

	decl := "class " + n.Name
	if len(n.BaseInterfaces) > 0 {
		decl += " : "
		for i, base := range n.BaseInterfaces {
			if i > 0 {
				decl += ", "
			}
			decl += "public virtual " + base
		}
	}
	g.header.line(decl + " {")
	g.header.line("public:")
	g.header.push()

	g.header.line("virtual ~" + n.Name + "() = default;")
	g.header.blank()

	for _, content := range n.Contents {
		switch c := content.(type) {
		case *idlast.Operation:
			g.emitOperationSignature(c)
		case *idlast.Attribute:
			g.emitAttributeSignature(c)
		case *idlast.Struct:
			g.header.pop()
			g.header.blank()
			g.emitStruct(c)
			g.header.push()
		case *idlast.Enum:
			g.header.pop()
			g.header.blank()
			g.emitEnum(c)
			g.header.push()
		}
	}

	g.header.pop()
	g.header.line("};")
	g.header.blank()

	if g.cfg.UseSmartPointers {
		g.header.line("using " + n.Name + "Ptr = std::shared_ptr<" + n.Name + ">;")
		g.header.blank()
	}
}

func (g *Generator) emitOperationSignature(op *idlast.Operation) {
	returnType := mapTypeForReturn(op.ReturnType)
	var sig strings.Builder
	sig.WriteString("virtual " + returnType + " " + op.Name + "(")
	for i, param := range op.Parameters {
		if i > 0 {
			sig.WriteString(", ")
		}
		sig.WriteString(mapTypeForParameter(param.Type, param.Direction))
		sig.WriteString(" " + param.Name)
	}
	sig.WriteString(") = 0;")

	if g.cfg.AddDoxygen && len(op.Parameters) > 0 {
		g.header.line("/**")
		g.header.line(" * @brief " + op.Name + " operation")
		for _, param := range op.Parameters {
			g.header.line(" * @param " + param.Name + " " + directionDoc(param.Direction))
		}
		if len(op.Context) > 0 {
			g.header.line(" * @note context: " + strings.Join(op.Context, ", "))
		}
		g.header.line(" */")
	}
	g.header.line(sig.String())
	g.header.blank()
}

func (g *Generator) emitAttributeSignature(attr *idlast.Attribute) {
	typ := mapType(attr.Type)

	g.doxygen(g.header, "@brief Get "+attr.Name+" attribute")
	g.header.line("virtual " + typ + " " + attr.Name + "() const = 0;")

	if !attr.IsReadonly {
		g.doxygen(g.header, "@brief Set "+attr.Name+" attribute")
		g.header.line("virtual void " + attr.Name + "(const " + typ + "& value) = 0;")
	}
	g.header.blank()
}

func (g *Generator) emitEnum(n *idlast.Enum) {
	g.doxygen(g.header, "@brief IDL enum "+n.Name)
	g.header.line("enum class " + n.Name + " {")
	g.header.push()
	for i, e := range n.Enumerators {
		line := e
		if i < len(n.Enumerators)-1 {
			line += ","
		}
		g.header.line(line)
	}
	g.header.pop()
	g.header.line("};")
	g.header.blank()
}

func (g *Generator) emitTypedef(n *idlast.Typedef) {
	base := mapType(n.OriginalType)
	for _, decl := range n.Declarators {
		final := base
		for i := len(decl.Dimensions) - 1; i >= 0; i-- {
			final = "std::array<" + final + ", " + fmtDim(decl.Dimensions[i]) + ">"
		}
		g.header.line("using " + decl.Name + " = " + final + ";")
	}
	g.header.blank()
}

func (g *Generator) emitConst(n *idlast.Const) {
	typ := mapType(n.Type)
	value := constValueToString(n.Value)
	g.header.line("constexpr " + typ + " " + n.Name + " = " + value + ";")
	g.header.blank()
}

func (g *Generator) emitException(n *idlast.Exception) {
	g.doxygen(g.header, "@brief IDL exception "+n.Name)
	g.header.line("class " + n.Name + " : public std::exception {")
	g.header.line("public:")
	g.header.push()

	for _, m := range n.Members {
		g.header.line(mapType(m.Type) + " " + m.Name + ";")
	}
	if len(n.Members) > 0 {
		g.header.blank()
	}

	if len(n.Members) > 0 {
		var params, inits strings.Builder
		for i, m := range n.Members {
			if i > 0 {
				params.WriteString(", ")
				inits.WriteString(", ")
			}
			typ := mapType(m.Type)
			params.WriteString("const " + typ + "& " + m.Name + "_")
			inits.WriteString(m.Name + "(" + m.Name + "_)")
		}
		g.header.line(n.Name + "(" + params.String() + ")")
		g.header.line("    : " + inits.String() + " {}")
		g.header.blank()
	}

	g.header.line(n.Name + "() = default;")
	g.header.blank()

	g.header.line("const char* what() const noexcept override {")
	g.header.push()
	g.header.line(`return "` + n.Name + `";`)
	g.header.pop()
	g.header.line("}")

	g.header.pop()
	g.header.line("};")
	g.header.blank()
}

func (g *Generator) emitUnion(n *idlast.Union) {
	g.doxygen(g.header, "@brief IDL union "+n.Name)

	discType := mapType(n.DiscriminatorType)

	g.header.line("class " + n.Name + " {")
	g.header.line("public:")
	g.header.push()

	g.header.line(discType + " _d() const { return discriminator_; }")
	g.header.line("void _d(" + discType + " d) { discriminator_ = d; }")
	g.header.blank()

	for _, c := range n.Cases {
		typ := mapType(c.Type)
		g.header.line(typ + " " + c.Name + "() const { return " + c.Name + "_; }")
		g.header.line("void " + c.Name + "(const " + typ + "& value) { " + c.Name + "_ = value; }")
		g.header.blank()
	}

	g.header.pop()
	g.header.line("private:")
	g.header.push()
	g.header.line(discType + " discriminator_;")

	for _, c := range n.Cases {
		g.header.line(mapType(c.Type) + " " + c.Name + "_;")
	}

	g.header.pop()
	g.header.pop()
	g.header.line("};")
	g.header.blank()
}
