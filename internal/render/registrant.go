package render

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/specialistvlad/pluginregistrant/internal/manifest"
)

// DoNotEdit is the header written at the top of every generated file.
const DoNotEdit = "Code generated by registrantgen. DO NOT EDIT."

const (
	varRegistry  = "r"
	funcRegister = "RegisterWith"
	funcClaimed  = "alreadyRegisteredWith"
)

// Registrant renders the registrant described by m as formatted Go source.
// The manifest is validated first.
func Registrant(m *manifest.Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	f := jen.NewFile(m.Package)
	f.HeaderComment(DoNotEdit)
	f.ImportName(m.RegistryPath, "registry")
	for _, p := range m.Plugins {
		f.ImportName(p.ImportPath, p.Package)
	}

	renderType(f, m)
	renderRegisterWith(f, m)
	renderAlreadyRegisteredWith(f, m)
	f.Line().Var().Id("_").Qual(m.RegistryPath, "Registrant").Op("=").Id(m.Registrant).Values()

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render registrant %s: %w", m.Registrant, err)
	}
	return buf.Bytes(), nil
}

func registryParam(m *manifest.Manifest) *jen.Statement {
	return jen.Id(varRegistry).Qual(m.RegistryPath, "Registry")
}

func returnOnErr(results ...jen.Code) *jen.Statement {
	return jen.If(jen.Err().Op("!=").Nil()).Block(jen.Return(results...))
}

func renderType(f *jen.File, m *manifest.Manifest) {
	f.Commentf("%s installs the compiled-in plugins into a host registry.", m.Registrant)
	f.Type().Id(m.Registrant).Struct()

	f.Line().Commentf("%s implements registry.Registrant.", funcRegister)
	f.Func().Params(jen.Id(m.Registrant)).Id(funcRegister).
		Params(registryParam(m)).
		Error().
		Block(jen.Return(jen.Id(funcRegister).Call(jen.Id(varRegistry))))
}

func renderRegisterWith(f *jen.File, m *manifest.Manifest) {
	body := []jen.Code{
		jen.List(jen.Id("installed"), jen.Err()).Op(":=").Id(funcClaimed).Call(jen.Id(varRegistry)),
		returnOnErr(jen.Err()),
		jen.If(jen.Id("installed")).Block(jen.Return(jen.Nil())),
	}

	for _, p := range m.Plugins {
		registrar := p.RegistrarVar()
		body = append(body,
			jen.List(jen.Id(registrar), jen.Err()).Op(":=").Id(varRegistry).Dot("RegistrarFor").Call(jen.Lit(p.ID)),
			returnOnErr(jen.Err()),
			jen.If(
				jen.Err().Op(":=").Qual(p.ImportPath, p.Func).Call(jen.Id(registrar)),
				jen.Err().Op("!=").Nil(),
			).Block(jen.Return(jen.Err())),
		)
	}
	body = append(body, jen.Return(jen.Nil()))

	f.Line().Commentf("%s installs every compiled-in plugin into r exactly once per registry.", funcRegister)
	f.Comment("It is not safe to call concurrently with the same registry.")
	f.Func().Id(funcRegister).Params(registryParam(m)).Error().Block(body...)
}

func renderAlreadyRegisteredWith(f *jen.File, m *manifest.Manifest) {
	f.Line().Func().Id(funcClaimed).Params(registryParam(m)).Params(jen.Bool(), jen.Error()).Block(
		jen.Id("key").Op(":=").Qual(m.RegistryPath, "CanonicalName").Call(jen.Id(m.Registrant).Values()),
		jen.List(jen.Id("ok"), jen.Err()).Op(":=").Id(varRegistry).Dot("HasPlugin").Call(jen.Id("key")),
		returnOnErr(jen.False(), jen.Err()),
		jen.If(jen.Id("ok")).Block(jen.Return(jen.True(), jen.Nil())),
		jen.If(
			jen.List(jen.Id("_"), jen.Err()).Op(":=").Id(varRegistry).Dot("RegistrarFor").Call(jen.Id("key")),
			jen.Err().Op("!=").Nil(),
		).Block(jen.Return(jen.False(), jen.Err())),
		jen.Return(jen.False(), jen.Nil()),
	)
}
