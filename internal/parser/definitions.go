package parser

import (
	"github.com/uysalibov/ibORB/internal/diag"
	"github.com/uysalibov/ibORB/internal/idlast"
	"github.com/uysalibov/ibORB/internal/symtab"
	"github.com/uysalibov/ibORB/internal/token"
)

func (p *Parser) parseDefinition() idlast.Definition {
	isAbstract := p.match(token.KwAbstract)
	isLocal := p.match(token.KwLocal)

	if p.at(token.KwModule) {
		if isAbstract || isLocal {
			p.error("'abstract' and 'local' cannot be applied to modules")
		}
		return p.parseModule()
	}

	if p.at(token.KwInterface) {
		return p.parseInterface(isAbstract, isLocal)
	}

	if isAbstract || isLocal {
		p.error("'abstract' and 'local' can only be applied to interfaces")
	}

	switch p.cur.Kind {
	case token.KwStruct:
		return p.parseStruct()
	case token.KwUnion:
		return p.parseUnion()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwTypedef:
		return p.parseTypedef()
	case token.KwConst:
		return p.parseConst()
	case token.KwException:
		return p.parseException()
	}

	p.error("expected definition (module, interface, struct, etc.)")
	return nil
}

func (p *Parser) parseModule() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwModule, "expected 'module'")

	if !p.at(token.Ident) {
		p.error("expected module name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	p.symbols.AddSymbol(name, symtab.Module, nil)
	p.symbols.EnterScope(name)

	node := &idlast.Module{Name: name, Location: loc, FQN: p.symbols.GetCurrentScopeName()}

	p.expect(token.LBrace, "expected '{' after module name")
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if def := p.parseDefinition(); def != nil {
			node.Definitions = append(node.Definitions, def)
		} else {
			p.synchronize()
		}
	}
	p.expect(token.RBrace, "expected '}' at end of module")
	p.expectSemicolon()

	p.symbols.LeaveScope()
	return node
}

func (p *Parser) parseInterface(isAbstract, isLocal bool) idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwInterface, "expected 'interface'")

	if !p.at(token.Ident) {
		p.error("expected interface name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	node := &idlast.Interface{Name: name, Location: loc, IsAbstract: isAbstract, IsLocal: isLocal}

	if p.at(token.Semicolon) {
		p.advance()
		node.IsForward = true
		p.symbols.AddSymbol(name, symtab.Interface, node)
		node.FQN = p.symbols.BuildFullyQualifiedName(name)
		return node
	}

	if p.at(token.Colon) {
		node.BaseInterfaces = p.parseInheritanceSpec()
	}

	p.symbols.AddSymbol(name, symtab.Interface, node)
	node.FQN = p.symbols.BuildFullyQualifiedName(name)
	p.symbols.EnterScope(name)

	p.expect(token.LBrace, "expected '{' after interface name")

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		readonly := p.match(token.KwReadonly)
		oneway := p.match(token.KwOneway)

		switch {
		case p.at(token.KwAttribute):
			if oneway {
				p.error("'oneway' cannot be applied to attributes")
			}
			if attr := p.parseAttribute(readonly); attr != nil {
				node.Contents = append(node.Contents, attr)
			}
		case p.isDefinitionStart():
			if readonly || oneway {
				p.error("'readonly' and 'oneway' can only be applied to attributes and operations")
			}
			if def := p.parseDefinition(); def != nil {
				node.Contents = append(node.Contents, def)
			}
		default:
			if readonly {
				p.error("'readonly' can only be applied to attributes")
			}
			retType := p.parseTypeSpec()
			if retType == nil {
				p.synchronize()
				continue
			}
			if !p.at(token.Ident) {
				p.error("expected operation name")
				p.synchronize()
				continue
			}
			opName := p.cur.Text
			p.advance()
			if op := p.parseOperation(retType, opName, oneway); op != nil {
				node.Contents = append(node.Contents, op)
			}
		}
	}

	p.expect(token.RBrace, "expected '}' at end of interface")
	p.expectSemicolon()

	p.symbols.LeaveScope()
	return node
}

func (p *Parser) parseStruct() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwStruct, "expected 'struct'")

	if !p.at(token.Ident) {
		p.error("expected struct name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	if p.at(token.Semicolon) {
		p.advance()
		node := &idlast.Struct{Name: name, Location: loc}
		p.symbols.AddSymbol(name, symtab.Struct, node)
		node.FQN = p.symbols.BuildFullyQualifiedName(name)
		return node
	}

	p.symbols.AddSymbol(name, symtab.Struct, nil)
	p.symbols.EnterScope(name)

	node := &idlast.Struct{Name: name, Location: loc, FQN: p.symbols.GetCurrentScopeName()}

	p.expect(token.LBrace, "expected '{' after struct name")
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		members := p.parseStructMembers()
		if members == nil {
			p.synchronize()
			continue
		}
		node.Members = append(node.Members, members...)
	}
	p.expect(token.RBrace, "expected '}' at end of struct")
	p.expectSemicolon()

	p.symbols.LeaveScope()
	return node
}

func (p *Parser) parseUnion() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwUnion, "expected 'union'")

	if !p.at(token.Ident) {
		p.error("expected union name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	p.expect(token.KwSwitch, "expected 'switch' after union name")
	p.expect(token.LParen, "expected '(' after 'switch'")

	discType := p.parseTypeSpec()
	if discType == nil {
		p.error("expected discriminator type")
		return nil
	}
	p.expect(token.RParen, "expected ')' after discriminator type")

	p.symbols.AddSymbol(name, symtab.Union, nil)
	p.symbols.EnterScope(name)

	node := &idlast.Union{
		Name:              name,
		Location:          loc,
		DiscriminatorType: discType,
		FQN:               p.symbols.GetCurrentScopeName(),
	}

	p.expect(token.LBrace, "expected '{' after union switch")
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if c := p.parseUnionCase(); c != nil {
			node.Cases = append(node.Cases, c)
		} else {
			p.synchronize()
		}
	}
	p.expect(token.RBrace, "expected '}' at end of union")
	p.expectSemicolon()

	p.symbols.LeaveScope()
	return node
}

func (p *Parser) parseEnum() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwEnum, "expected 'enum'")

	if !p.at(token.Ident) {
		p.error("expected enum name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	p.expect(token.LBrace, "expected '{' after enum name")

	var values []string
	for {
		if !p.at(token.Ident) {
			p.error("expected enumerator name")
			break
		}
		values = append(values, p.cur.Text)
		p.advance()
		if !p.match(token.Comma) {
			break
		}
	}

	p.expect(token.RBrace, "expected '}' at end of enum")
	p.expectSemicolon()

	node := &idlast.Enum{Name: name, Enumerators: values, Location: loc}
	p.symbols.AddSymbol(name, symtab.Enum, node)
	node.FQN = p.symbols.BuildFullyQualifiedName(name)

	for _, v := range node.Enumerators {
		p.symbols.AddSymbol(v, symtab.EnumValue, nil)
	}

	return node
}

func (p *Parser) parseTypedef() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwTypedef, "expected 'typedef'")

	typ := p.parseTypeSpec()
	if typ == nil {
		p.error("expected type specification")
		return nil
	}

	decls := p.parseDeclarators()
	if len(decls) == 0 {
		p.error("expected declarator")
		return nil
	}
	p.expectSemicolon()

	astDecls := make([]idlast.TypedefDeclarator, 0, len(decls))
	for _, d := range decls {
		astDecls = append(astDecls, idlast.TypedefDeclarator{Name: d.name, Dimensions: d.dims})
		p.symbols.AddSymbol(d.name, symtab.Typedef, nil)
	}

	node := &idlast.Typedef{
		Name:         astDecls[0].Name,
		OriginalType: typ,
		Declarators:  astDecls,
		Location:     loc,
	}
	node.FQN = p.symbols.BuildFullyQualifiedName(node.Name)
	return node
}

func (p *Parser) parseConst() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwConst, "expected 'const'")

	typ := p.parseTypeSpec()
	if typ == nil {
		p.error("expected const type")
		return nil
	}

	if !p.at(token.Ident) {
		p.error("expected const name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	p.expect(token.Assign, "expected '=' after const name")
	value := p.parseConstExpr()
	p.expectSemicolon()

	node := &idlast.Const{Name: name, Type: typ, Value: value, Location: loc}
	p.symbols.AddSymbol(name, symtab.Constant, node)
	node.FQN = p.symbols.BuildFullyQualifiedName(name)
	return node
}

func (p *Parser) parseException() idlast.Definition {
	loc := p.cur.Loc
	p.expect(token.KwException, "expected 'exception'")

	if !p.at(token.Ident) {
		p.error("expected exception name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	p.symbols.AddSymbol(name, symtab.Exception, nil)
	p.symbols.EnterScope(name)

	node := &idlast.Exception{Name: name, Location: loc, FQN: p.symbols.GetCurrentScopeName()}

	p.expect(token.LBrace, "expected '{' after exception name")
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		members := p.parseStructMembers()
		if members == nil {
			p.synchronize()
			continue
		}
		node.Members = append(node.Members, members...)
	}
	p.expect(token.RBrace, "expected '}' at end of exception")
	p.expectSemicolon()

	p.symbols.LeaveScope()
	return node
}

// ----------------------------------------------------------------------
// Interface members
// ----------------------------------------------------------------------

func (p *Parser) parseOperation(returnType idlast.Type, name string, oneway bool) *idlast.Operation {
	loc := p.prev.Loc

	node := &idlast.Operation{
		Name:       name,
		ReturnType: returnType,
		IsOneway:   oneway,
		Location:   loc,
	}
	node.FQN = p.symbols.BuildFullyQualifiedName(name)

	p.expect(token.LParen, "expected '(' after operation name")
	if !p.at(token.RParen) {
		for {
			if param := p.parseParameter(); param != nil {
				node.Parameters = append(node.Parameters, param)
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.RParen, "expected ')' after parameters")

	if p.at(token.KwRaises) {
		node.Raises = p.parseRaisesExpr()
	}
	if p.at(token.KwContext) {
		node.Context = p.parseContextExpr()
	}

	p.expectSemicolon()

	if oneway {
		p.checkOnewayValidity(node)
	}

	p.symbols.AddSymbol(name, symtab.Operation, node)
	return node
}

// checkOnewayValidity warns (never rejects) when a oneway operation has a
// non-void return type or an out/inout parameter — neither can be honored
// without a reply channel, but rejecting the file outright would be too
// strict for a generator that only emits declarations.
func (p *Parser) checkOnewayValidity(op *idlast.Operation) {
	if bt, ok := op.ReturnType.(*idlast.BasicType); !ok || bt.Kind != idlast.TVoid {
		p.diags.Add(diag.NewWarning(diag.SemOnewayViolation, op.Location,
			"'oneway' operation '"+op.Name+"' should return void"))
	}
	for _, param := range op.Parameters {
		if param.Direction != idlast.DirIn {
			p.diags.Add(diag.NewWarning(diag.SemOnewayViolation, op.Location,
				"'oneway' operation '"+op.Name+"' should only have 'in' parameters"))
			break
		}
	}
}

func (p *Parser) parseAttribute(readonly bool) *idlast.Attribute {
	loc := p.cur.Loc
	p.expect(token.KwAttribute, "expected 'attribute'")

	typ := p.parseTypeSpec()
	if typ == nil {
		p.error("expected attribute type")
		return nil
	}
	if !p.at(token.Ident) {
		p.error("expected attribute name")
		return nil
	}
	name := p.cur.Text
	p.advance()
	p.expectSemicolon()

	node := &idlast.Attribute{Name: name, Type: typ, IsReadonly: readonly, Location: loc}
	p.symbols.AddSymbol(name, symtab.Attribute, node)
	node.FQN = p.symbols.BuildFullyQualifiedName(name)
	return node
}

func (p *Parser) parseParameter() *idlast.Parameter {
	loc := p.cur.Loc
	dir := p.parseParamDirection()

	typ := p.parseTypeSpec()
	if typ == nil {
		p.error("expected parameter type")
		return nil
	}
	if !p.at(token.Ident) {
		p.error("expected parameter name")
		return nil
	}
	name := p.cur.Text
	p.advance()

	return &idlast.Parameter{Direction: dir, Type: typ, Name: name, Location: loc}
}

// parseStructMembers parses one member declaration line and expands it into
// one StructMember per declarator, so `long x, y, z;` produces three
// members instead of silently keeping only the first.
func (p *Parser) parseStructMembers() []*idlast.StructMember {
	loc := p.cur.Loc

	typ := p.parseTypeSpec()
	if typ == nil {
		return nil
	}

	decls := p.parseDeclarators()
	if len(decls) == 0 {
		p.error("expected member name")
		return nil
	}
	p.expectSemicolon()

	members := make([]*idlast.StructMember, 0, len(decls))
	for _, d := range decls {
		memberType := typ
		if len(d.dims) > 0 {
			memberType = &idlast.ArrayType{Element: typ, Dimensions: d.dims, Location: loc}
		}
		members = append(members, &idlast.StructMember{Type: memberType, Name: d.name, Location: loc})
	}
	return members
}

func (p *Parser) parseUnionCase() *idlast.UnionCase {
	loc := p.cur.Loc
	var labels []idlast.CaseLabel

	for p.at(token.KwCase) || p.at(token.KwDefault) {
		var label idlast.CaseLabel
		if p.match(token.KwDefault) {
			label.IsDefault = true
			p.expect(token.Colon, "expected ':' after 'default'")
		} else {
			p.advance()
			label.Value = p.parseConstExpr()
			p.expect(token.Colon, "expected ':' after case value")
		}
		labels = append(labels, label)
	}

	if len(labels) == 0 {
		p.error("expected 'case' or 'default'")
		return nil
	}

	typ := p.parseTypeSpec()
	if typ == nil {
		p.error("expected type in union case")
		return nil
	}
	if !p.at(token.Ident) {
		p.error("expected member name in union case")
		return nil
	}
	name := p.cur.Text
	p.advance()
	p.expectSemicolon()

	return &idlast.UnionCase{Labels: labels, Type: typ, Name: name, Location: loc}
}
