package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Imports      []string       `("import" @String ";")*`
	Declarations []*Declaration `@@*`
}

type TField struct {
	Name string `@Ident ":"`
	Kind string `(@Ident | @String | @RawString)`
}

type TCase struct {
	Name   string    `@Ident "of"`
	Kind   string    `(  (@Ident | @String | @RawString)`
	Record bool      ` | @"{"`
	Fields []*TField `   (@@ ("," @@)*)? "}" )`
}

type Declaration struct {
	Name  string   `"type" @Ident "="`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Many  *[]TCase ` | ("|" (@@))*)`
	I     struct{} `";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

// kind renders a type expression such as "Expr", "[]Stmt" or
// "types.Token", qualifying package selectors against the file's imports.
func (t *TypeDecls) kind(k string) Code {
	if strings.HasPrefix(k, "[]") {
		return Index().Add(t.kind(strings.TrimPrefix(k, "[]")))
	}
	if strings.HasPrefix(k, "*") {
		return Op("*").Add(t.kind(strings.TrimPrefix(k, "*")))
	}
	if dot := strings.Index(k, "."); dot >= 0 {
		alias, name := k[:dot], k[dot+1:]
		for _, imp := range t.Imports {
			if path.Base(imp) == alias {
				return Qual(imp, name)
			}
		}
	}
	return Id(k)
}

func GenerateDecls(pkgname string, t *TypeDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by adtGen. DO NOT EDIT.")

	for _, decl := range t.Declarations {

		if decl.Plain != nil {
			f.Type().Id(decl.Name).Add(t.kind(*decl.Plain))
		} else if decl.Many != nil {
			f.Type().Id(decl.Name).Interface(
				Id("is_" + decl.Name).Params(),
			)

			for _, it := range *decl.Many {
				switch {
				case it.Record:
					var fields []Code
					for _, field := range it.Fields {
						fields = append(fields, Id(field.Name).Add(t.kind(field.Kind)))
					}
					f.Type().Id(it.Name).Struct(fields...)
				case t.IsSumType(it.Kind):
					f.Type().Id(it.Name).Struct(Id(it.Kind))
				default:
					f.Type().Id(it.Name).Add(t.kind(it.Kind))
				}

				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			}
		}
	}

	return fmt.Sprintf("%#v", f)
}

func Parse(data []byte) (*TypeDecls, error) {
	parser, err := participle.Build(&TypeDecls{})
	if err != nil {
		return nil, err
	}

	ast := &TypeDecls{}
	if err := parser.ParseBytes(data, ast); err != nil {
		return nil, err
	}
	return ast, nil
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtGen <input.adt> <output.go> <package>")
		os.Exit(2)
	}

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast, err := Parse(inData)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, ast)), 0644)
	if err != nil {
		panic(err)
	}
}
