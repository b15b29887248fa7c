package core

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	tmplfs "github.com/helicity-labs/telemwire/wiregen/templates"
)

const runtimeAlias = "wire"

var templateFuncs = template.FuncMap{
	"rt": runtimeName,
}

func runtimeName(name string) string {
	return runtimeAlias + "." + name
}

var marshalTemplate = template.Must(
	template.New("marshal").Funcs(templateFuncs).ParseFS(tmplfs.FS, "*.go.tpl"))

// Options configures how generation runs.
// Additional switches can be added over time.
type Options struct {
	Verbose bool
	// Structs, if non-empty, restricts generation to the
	// named struct types. Names must match Go type names
	// exactly (no package qualification).
	Structs []string
}

// Run generates wire code for a single Go source file.
// It emits per-struct marshal/unmarshal implementations into outputPath.
func Run(inputPath, outputPath string, opts Options) error {
	src, err := Generate(inputPath, opts)
	if err != nil {
		return err
	}
	if src == nil {
		if opts.Verbose {
			fmt.Fprintf(os.Stderr, "wiregen: no eligible structs in %s\n", inputPath)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	formatted, err := imports.Process(outputPath, src, nil)
	if err != nil {
		// Fall back to go/format if goimports fails.
		if f, ferr := format.Source(src); ferr == nil {
			formatted = f
		} else {
			formatted = src
		}
	}

	_, err = out.Write(formatted)
	return err
}

// Generate parses a Go source file and returns the generated source, or
// nil when the file contains no eligible structs. It is split out from
// Run so it can be exercised without touching the filesystem output.
func Generate(inputPath string, opts Options) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, inputPath, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	structs, err := collectStructs(file, opts)
	if err != nil {
		return nil, err
	}
	if len(structs) == 0 {
		return nil, nil
	}

	data := struct {
		Package string
		Structs []structSpec
	}{
		Package: file.Name.Name,
		Structs: structs,
	}

	var buf bytes.Buffer
	if err := marshalTemplate.ExecuteTemplate(&buf, "marshal.go.tpl", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type fieldSpec struct {
	GoName     string
	AppendFunc string
	ReadFunc   string
	SizeConst  string
}

type structSpec struct {
	Name     string
	Fields   []fieldSpec
	SizeExpr string
}

// fieldFuncs maps predeclared Go types onto the runtime's fixed-width
// function family. The family is closed; anything outside it is an
// error, not a silent skip, because a struct with an unencodable field
// cannot round-trip.
var fieldFuncs = map[string]fieldSpec{
	"int8":    {AppendFunc: "AppendI8", ReadFunc: "ReadI8Bytes", SizeConst: "I8Size"},
	"int16":   {AppendFunc: "AppendI16", ReadFunc: "ReadI16Bytes", SizeConst: "I16Size"},
	"int32":   {AppendFunc: "AppendI32", ReadFunc: "ReadI32Bytes", SizeConst: "I32Size"},
	"int64":   {AppendFunc: "AppendI64", ReadFunc: "ReadI64Bytes", SizeConst: "I64Size"},
	"uint8":   {AppendFunc: "AppendU8", ReadFunc: "ReadU8Bytes", SizeConst: "U8Size"},
	"byte":    {AppendFunc: "AppendU8", ReadFunc: "ReadU8Bytes", SizeConst: "U8Size"},
	"uint16":  {AppendFunc: "AppendU16", ReadFunc: "ReadU16Bytes", SizeConst: "U16Size"},
	"uint32":  {AppendFunc: "AppendU32", ReadFunc: "ReadU32Bytes", SizeConst: "U32Size"},
	"uint64":  {AppendFunc: "AppendU64", ReadFunc: "ReadU64Bytes", SizeConst: "U64Size"},
	"float32": {AppendFunc: "AppendF32", ReadFunc: "ReadF32Bytes", SizeConst: "F32Size"},
	"float64": {AppendFunc: "AppendF64", ReadFunc: "ReadF64Bytes", SizeConst: "F64Size"},
}

// collectStructs finds struct types in the file and resolves each
// exported field onto the wire type family.
//
// wire tag rules:
//   - `wire:"-"` excludes a field
//   - any other wire tag value is reserved and currently ignored
func collectStructs(file *ast.File, opts Options) ([]structSpec, error) {
	var allowed map[string]struct{}
	if len(opts.Structs) > 0 {
		allowed = make(map[string]struct{}, len(opts.Structs))
		for _, name := range opts.Structs {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			allowed[name] = struct{}{}
		}
	}

	var structs []structSpec
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}
			// If a struct allowlist is provided, skip
			// types that are not explicitly listed.
			if len(allowed) > 0 {
				if _, ok := allowed[ts.Name.Name]; !ok {
					continue
				}
			}
			ss := structSpec{Name: ts.Name.Name}
			var sizeParts []string
			for _, field := range st.Fields.List {
				// Skip anonymous fields.
				if len(field.Names) == 0 {
					continue
				}
				// The tag covers every name in a grouped
				// declaration.
				if excludedByTag(field.Tag) {
					continue
				}
				for _, id := range field.Names {
					name := id.Name
					// Only exported fields participate.
					if !ast.IsExported(name) {
						continue
					}
					ident, ok := field.Type.(*ast.Ident)
					if !ok {
						return nil, fmt.Errorf("wiregen: %s.%s: only fixed-width numeric fields are supported", ts.Name.Name, name)
					}
					fns, ok := fieldFuncs[ident.Name]
					if !ok {
						return nil, fmt.Errorf("wiregen: %s.%s: type %s is not a fixed-width numeric type", ts.Name.Name, name, ident.Name)
					}
					fns.GoName = name
					ss.Fields = append(ss.Fields, fns)
					sizeParts = append(sizeParts, runtimeName(fns.SizeConst))
				}
			}
			if len(ss.Fields) > 0 {
				ss.SizeExpr = strings.Join(sizeParts, " + ")
				structs = append(structs, ss)
			}
		}
	}
	return structs, nil
}

// excludedByTag reports whether a `wire:"-"` struct tag excludes the
// field from generation.
func excludedByTag(tag *ast.BasicLit) bool {
	if tag == nil {
		return false
	}
	raw := tag.Value
	if len(raw) >= 2 && raw[0] == '`' && raw[len(raw)-1] == '`' {
		raw = raw[1 : len(raw)-1]
	}
	return reflect.StructTag(raw).Get("wire") == "-"
}
